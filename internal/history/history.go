package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"steamlet.dev/launcher/internal/folder"
)

// Launch is one recorded dispatch of the Steam client. Alias is empty when
// the game was started by raw id.
type Launch struct {
	ID        uint `gorm:"primarykey"`
	Alias     string
	GameID    uint32
	CreatedAt time.Time
}

// History appends and queries the launch log kept next to the alias data.
type History struct {
	database *gorm.DB
}

// Open connects to the history database under dataDir, creating and
// migrating it when needed.
func Open(dataDir string) (instance *History, err error) {
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	instance = &History{}
	dialector := sqlite.Open(filepath.Join(dataDir, folder.HistoryDatabaseName))
	if instance.database, err = gorm.Open(dialector, &gorm.Config{}); err != nil {
		return nil, err
	}
	if err = instance.database.AutoMigrate(&Launch{}); err != nil {
		return nil, err
	}
	return
}

// Record appends one launch.
func (history *History) Record(alias string, gameID uint32) error {
	if result := history.database.Create(&Launch{Alias: alias, GameID: gameID}); result.Error != nil {
		return result.Error
	}
	return nil
}

// Recent returns up to limit launches, newest first.
func (history *History) Recent(limit int) (launches []Launch, err error) {
	if result := history.database.Order("id desc").Limit(limit).Find(&launches); result.Error != nil {
		return nil, result.Error
	}
	return
}

func (history *History) Close() (err error) {
	if history.database == nil {
		return
	}
	var database *sql.DB
	if database, err = history.database.DB(); err != nil {
		return
	}
	return database.Close()
}
