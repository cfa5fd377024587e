package launcher_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"steamlet.dev/launcher/internal/launcher"
)

type MockRunner struct {
	Listing     []byte
	OutputError error
	StartError  error
	Started     [][]string
}

func (mockRunner *MockRunner) Output(name string, arguments ...string) ([]byte, error) {
	return mockRunner.Listing, mockRunner.OutputError
}

func (mockRunner *MockRunner) Start(name string, arguments ...string) error {
	mockRunner.Started = append(mockRunner.Started, append([]string{name}, arguments...))
	return mockRunner.StartError
}

func TestLaunchFlatpakSteam(t *testing.T) {
	runner := &MockRunner{Listing: []byte("org.gimp.GIMP\ncom.valvesoftware.Steam\n")}
	output := &bytes.Buffer{}
	err := launcher.NewDispatcher(runner).Launch(output, 227300)
	assert.Nil(t, err)
	assert.Equal(t, [][]string{
		{"flatpak", "run", "com.valvesoftware.Steam", "steam://run/227300"},
	}, runner.Started)
	assert.True(t, strings.HasPrefix(output.String(), "----"))
}

func TestLaunchNativeSteam(t *testing.T) {
	runner := &MockRunner{Listing: []byte("org.gimp.GIMP\n")}
	err := launcher.NewDispatcher(runner).Launch(&bytes.Buffer{}, 227300)
	assert.Nil(t, err)
	assert.Equal(t, [][]string{
		{"steam", "steam://run/227300"},
	}, runner.Started)
}

func TestLaunchProbeFailure(t *testing.T) {
	runner := &MockRunner{OutputError: errors.New("cannot start flatpak")}
	err := launcher.NewDispatcher(runner).Launch(&bytes.Buffer{}, 227300)
	assert.NotNil(t, err)
	assert.Empty(t, runner.Started)
}

func TestLaunchProbeListingNotText(t *testing.T) {
	runner := &MockRunner{Listing: []byte{0xff, 0xfe, 0xfd}}
	err := launcher.NewDispatcher(runner).Launch(&bytes.Buffer{}, 227300)
	assert.NotNil(t, err)
	assert.Empty(t, runner.Started)
}

func TestLaunchStartFailure(t *testing.T) {
	runner := &MockRunner{
		Listing:    []byte("com.valvesoftware.Steam\n"),
		StartError: errors.New("cannot start the client"),
	}
	err := launcher.NewDispatcher(runner).Launch(&bytes.Buffer{}, 227300)
	assert.NotNil(t, err)
}
