// Package singleton refuses to start a second copy of a supervisor binary.
//
// Exactly one supervisor may own the recorded wake state on a machine, so
// startup scans the process table for another instance of the same
// executable and aborts when one is found.
package singleton

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another instance of the executable was found.
var ErrAlreadyRunning = errors.New("another instance is already running")

// listProcesses enumerates the process table, replaced in tests.
var listProcesses = ps.Processes

// Guard returns ErrAlreadyRunning when another process is running the same
// executable as the current one.
func Guard() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	return Check(filepath.Base(executable))
}

// Check scans the process table for another process running processName.
func Check(processName string) error {
	processList, err := listProcesses()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if !sameExecutable(process.Executable(), processName) {
			continue
		}

		return fmt.Errorf("%s (pid %d): %w", processName, process.Pid(), ErrAlreadyRunning)
	}

	return nil
}

// sameExecutable compares executable names ignoring case and a Windows suffix.
func sameExecutable(a, b string) bool {
	return strings.EqualFold(trimExeSuffix(a), trimExeSuffix(b))
}

func trimExeSuffix(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		return name[:len(name)-len(".exe")]
	}

	return name
}
