//go:build windows

package elevate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"

	"xfetch/internal/plog"
)

// tokenChecker reads the elevation flag of the current process token.
type tokenChecker struct{}

func (tokenChecker) IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}

func platformChecker() Checker {
	return tokenChecker{}
}

// runasRelauncher asks the shell to start the program as administrator. The
// elevated process runs in its own console, so there is nothing to wait for.
type runasRelauncher struct{}

func platformRelauncher() Relauncher {
	return runasRelauncher{}
}

func (runasRelauncher) Relaunch(_ context.Context, exe string, args []string) (int, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = windows.EscapeArg(arg)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return 0, err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return 0, fmt.Errorf("encode executable path: %w", err)
	}
	params, err := windows.UTF16PtrFromString(strings.Join(quoted, " "))
	if err != nil {
		return 0, fmt.Errorf("encode arguments: %w", err)
	}
	var cwd *uint16
	if dir, err := os.Getwd(); err == nil {
		if cwd, err = windows.UTF16PtrFromString(dir); err != nil {
			cwd = nil
		}
	}

	plog.Debug("Relaunching through ShellExecute", "verb", "runas", "exe", exe, "args", args)
	if err := windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL); err != nil {
		return 0, fmt.Errorf("ShellExecute runas: %w", err)
	}
	return 0, nil
}
