package launcher

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Steam client invocation targets.
const (
	steamExecutable   = "steam"
	flatpakExecutable = "flatpak"
	steamFlatpakID    = "com.valvesoftware.Steam"
)

const separator = "-------------------------------------------------"

// Runner abstracts process spawning so the dispatch policy can be tested
// without touching the system.
type Runner interface {
	// Output runs a command to completion and returns its standard output.
	Output(name string, arguments ...string) ([]byte, error)
	// Start spawns a command without waiting for it to exit.
	Start(name string, arguments ...string) error
}

type execRunner struct{}

func (execRunner) Output(name string, arguments ...string) ([]byte, error) {
	return exec.Command(name, arguments...).Output()
}

func (execRunner) Start(name string, arguments ...string) error {
	return exec.Command(name, arguments...).Start()
}

// Dispatcher starts the Steam client for a given game id, preferring a
// flatpak install over a native one.
type Dispatcher struct {
	runner Runner
}

// NewDispatcher builds a dispatcher; a nil runner means real processes.
func NewDispatcher(runner Runner) (instance *Dispatcher) {
	if runner == nil {
		runner = execRunner{}
	}
	return &Dispatcher{runner: runner}
}

// Launch hands the steam://run deep link to the Steam client and returns
// without waiting for it. The client is never asked whether the id maps to
// an installed title; any failure to start a process is an error for the
// caller to treat as fatal.
func (dispatcher *Dispatcher) Launch(output io.Writer, gameID uint32) (err error) {
	fmt.Fprintln(output, separator)
	deepLink := fmt.Sprintf("steam://run/%d", gameID)
	var sandboxed bool
	if sandboxed, err = dispatcher.flatpakSteamInstalled(); err != nil {
		logrus.Error("Cannot probe the installed flatpak applications")
		return
	}
	if sandboxed {
		logrus.Debug("Starting the flatpak Steam client")
		return dispatcher.runner.Start(flatpakExecutable, "run", steamFlatpakID, deepLink)
	}
	logrus.Debug("Starting the native Steam client")
	return dispatcher.runner.Start(steamExecutable, deepLink)
}

// flatpakSteamInstalled searches the flatpak application listing for the
// Steam package identifier. The listing is buffered fully before the search,
// there is no process-to-process pipe.
func (dispatcher *Dispatcher) flatpakSteamInstalled() (found bool, err error) {
	var listing []byte
	if listing, err = dispatcher.runner.Output(flatpakExecutable, "list", "--app", "--columns=application"); err != nil {
		return
	}
	if !utf8.Valid(listing) {
		return false, errors.New("the flatpak application listing is not valid text")
	}
	return strings.Contains(string(listing), steamFlatpakID), nil
}
