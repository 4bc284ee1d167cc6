// Package elevate makes sure the process runs with administrative rights.
//
// A Gate asks a Checker whether the current process is elevated. If it is
// not, the Gate hands the same command line to a Relauncher (sudo on Unix,
// ShellExecute "runas" on Windows) and the caller must stop without doing
// any work of its own.
package elevate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"xfetch/internal/plog"
	"xfetch/internal/ui"
)

// MarkerFlag is added to the relaunched command line. A process that
// carries it and is still not elevated fails instead of relaunching again.
const MarkerFlag = "--elevated"

// Checker reports whether the current process has administrative rights.
type Checker interface {
	IsElevated() (bool, error)
}

// Relauncher starts exe with args under elevated rights and returns the exit
// code to finish with.
type Relauncher interface {
	Relaunch(ctx context.Context, exe string, args []string) (int, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func() (bool, error)

func (f CheckerFunc) IsElevated() (bool, error) { return f() }

// Decision is the outcome of Gate.Ensure.
type Decision struct {
	// Relaunched is set when an elevated copy of the process was started
	// and the current process must not perform the operation.
	Relaunched bool
	ExitCode   int
}

// Error is a failed elevation check or relaunch.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to obtain elevated privileges: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrStillNotElevated is returned when a relaunched process is not elevated either.
var ErrStillNotElevated = errors.New("relaunched process is still not elevated")

// Gate combines a capability check with a relaunch strategy.
type Gate struct {
	Checker    Checker
	Relauncher Relauncher
	// Executable resolves the path of the running binary.
	Executable func() (string, error)
}

// NewGate returns the gate for the host platform.
func NewGate() *Gate {
	return &Gate{
		Checker:    platformChecker(),
		Relauncher: platformRelauncher(),
		Executable: os.Executable,
	}
}

// Ensure returns a zero Decision when the process may go on. Otherwise it
// relaunches the program with MarkerFlag plus args and reports the exit code
// the caller should finish with. relaunched tells whether the current process
// was itself started by a relaunch.
func (g *Gate) Ensure(ctx context.Context, args []string, relaunched bool) (Decision, error) {
	elevated, err := g.Checker.IsElevated()
	if err != nil {
		return Decision{}, &Error{Err: err}
	}
	plog.Debug("Elevation check", "elevated", elevated, "relaunched", relaunched)
	if elevated {
		return Decision{}, nil
	}
	if relaunched {
		return Decision{}, &Error{Err: ErrStillNotElevated}
	}

	exe, err := g.Executable()
	if err != nil {
		return Decision{}, &Error{Err: fmt.Errorf("locate executable: %w", err)}
	}

	// The marker goes first so a "--" in args cannot turn it into a positional.
	childArgs := make([]string, 0, len(args)+1)
	childArgs = append(childArgs, MarkerFlag)
	childArgs = append(childArgs, args...)

	ui.Plain("Requesting elevated privileges...")
	code, err := g.Relauncher.Relaunch(ctx, exe, childArgs)
	if err != nil {
		return Decision{}, &Error{Err: err}
	}
	return Decision{Relaunched: true, ExitCode: code}, nil
}
