package folder

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Names inside the per-user local data directory.
const (
	ApplicationName     = "steamlet"
	DataFileName        = "steamlet.json"
	HistoryDatabaseName = "history.db"
)

// DataDir resolves the application data directory. An explicit override
// replaces the platform resolution and keeps the application subfolder, so
// relocating the data also relocates the history database.
func DataDir(override string) string {
	if override != "" {
		return filepath.Join(override, ApplicationName)
	}
	return filepath.Join(xdg.DataHome, ApplicationName)
}
