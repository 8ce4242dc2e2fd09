// Package hook runs a user-supplied command when a wake-up is observed.
package hook

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedOS indicates the current OS has no known command interpreter.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// ErrEmptyCommand indicates no hook command was supplied.
var ErrEmptyCommand = errors.New("hook command is empty")

// Run hands the command line to the platform shell:
// - Linux/macOS: `sh -c <command>`
// - Windows:     `cmd /C <command>`
// The command is started asynchronously; its exit status is not collected.
func Run(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	osName := strings.ToLower(runtime.GOOS)

	switch {
	case strings.Contains(osName, "linux") || strings.Contains(osName, "darwin"):
		return exec.CommandContext(ctx, "sh", "-c", command).Start()
	case strings.Contains(osName, "windows"):
		return exec.CommandContext(ctx, "cmd", "/C", command).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s: %w", runtime.GOOS, ErrUnsupportedOS)
	}
}
