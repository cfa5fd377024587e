package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"steamlet.dev/launcher/internal/folder"
)

// ErrEmptyAlias is returned by Set when the alias is blank after trimming.
var ErrEmptyAlias = errors.New("alias must not be empty")

// Entry is one alias mapping, as returned by List.
type Entry struct {
	Alias  string
	GameID uint32
}

// Store is the alias mapping loaded from the backing file. It is an explicit
// value living for one command invocation; mutating commands call Persist
// once at the end.
type Store struct {
	path    string
	entries map[string]uint32
}

// Open loads the backing file under dataDir, creating the directory and the
// file on first use. Malformed or empty content yields an empty mapping so
// corrupted state never blocks a rewrite; only an unresolvable directory or
// an unopenable file is an error.
func Open(dataDir string) (instance *Store, err error) {
	instance = &Store{
		path:    filepath.Join(dataDir, folder.DataFileName),
		entries: map[string]uint32{},
	}
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		logrus.Error("Cannot create the application data directory")
		return nil, err
	}
	var file *os.File
	if file, err = os.OpenFile(instance.path, os.O_RDWR|os.O_CREATE, 0644); err != nil {
		logrus.Error("Cannot open the alias data file")
		return nil, err
	}
	defer file.Close()
	var data []byte
	if data, err = io.ReadAll(file); err != nil {
		logrus.Error("Cannot read the alias data file")
		return nil, err
	}
	if unmarshalError := json.Unmarshal(data, &instance.entries); unmarshalError != nil {
		logrus.Debug("Cannot parse ", folder.DataFileName, ", starting from an empty mapping")
		instance.entries = map[string]uint32{}
	}
	return
}

// Normalize maps user input to the stored key form.
func Normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}

// Lookup returns the game id associated to the alias, in any case variant.
func (store *Store) Lookup(alias string) (gameID uint32, found bool) {
	gameID, found = store.entries[Normalize(alias)]
	return
}

// Set inserts or overwrites the mapping entry for the normalized alias and
// returns the stored key. The mapping is untouched on ErrEmptyAlias.
func (store *Store) Set(alias string, gameID uint32) (key string, err error) {
	if key = Normalize(alias); key == "" {
		return "", ErrEmptyAlias
	}
	store.entries[key] = gameID
	return
}

// Remove deletes every requested alias present in the mapping, matching the
// same normalized form used by Set and Lookup. It returns the removed keys
// in request order along with the ones that were not found.
func (store *Store) Remove(aliases []string) (removed []string, missing []string) {
	for _, alias := range aliases {
		key := Normalize(alias)
		if _, found := store.entries[key]; found {
			delete(store.entries, key)
			removed = append(removed, key)
		} else {
			missing = append(missing, key)
		}
	}
	return
}

// List returns all entries sorted by alias for a reproducible display.
func (store *Store) List() (entries []Entry) {
	for alias, gameID := range store.entries {
		entries = append(entries, Entry{Alias: alias, GameID: gameID})
	}
	sort.Slice(entries, func(first, second int) bool {
		return entries[first].Alias < entries[second].Alias
	})
	return
}

// Persist rewrites the whole backing file in place, truncating it before the
// pretty printed dump. The rewrite is not transactional; a crash in between
// can leave the file empty, which Open tolerates.
func (store *Store) Persist() (err error) {
	var data []byte
	if data, err = json.MarshalIndent(store.entries, "", "  "); err != nil {
		return
	}
	var file *os.File
	if file, err = os.OpenFile(store.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer file.Close()
	_, err = file.Write(data)
	return
}

// Len returns the number of stored aliases.
func (store *Store) Len() int {
	return len(store.entries)
}

// Path returns the backing file location.
func (store *Store) Path() string {
	return store.path
}
