package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"steamlet.dev/launcher/internal/history"
)

func TestOpenCreatesDirectory(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "steamlet")
	instance, err := history.Open(dataDir)
	assert.Nil(t, err)
	defer instance.Close()

	launches, err := instance.Recent(10)
	assert.Nil(t, err)
	assert.Empty(t, launches)
}

func TestRecordAndRecent(t *testing.T) {
	instance, err := history.Open(t.TempDir())
	assert.Nil(t, err)
	defer instance.Close()

	assert.Nil(t, instance.Record("ets2", 227300))
	assert.Nil(t, instance.Record("", 440))
	assert.Nil(t, instance.Record("portal", 400))

	launches, err := instance.Recent(2)
	assert.Nil(t, err)
	assert.Len(t, launches, 2)
	assert.Equal(t, "portal", launches[0].Alias)
	assert.Equal(t, uint32(400), launches[0].GameID)
	assert.Equal(t, "", launches[1].Alias)
	assert.Equal(t, uint32(440), launches[1].GameID)
}

func TestRecentSurvivesReopen(t *testing.T) {
	dataDir := t.TempDir()
	instance, err := history.Open(dataDir)
	assert.Nil(t, err)
	assert.Nil(t, instance.Record("ets2", 227300))
	assert.Nil(t, instance.Close())

	reopened, err := history.Open(dataDir)
	assert.Nil(t, err)
	defer reopened.Close()
	launches, err := reopened.Recent(10)
	assert.Nil(t, err)
	assert.Len(t, launches, 1)
	assert.Equal(t, "ets2", launches[0].Alias)
}
