package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"xfetch/internal/elevate"
	"xfetch/internal/fsop"
	"xfetch/internal/ui"
)

// Process exit codes. A declined overwrite is a success.
const (
	exitOK         = 0
	exitFilesystem = 1
	exitUsage      = 2
	exitNotFound   = 3
	exitElevation  = 4
)

// usageError marks malformed command lines.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// relaunchError ends a process whose work was handed to an elevated copy.
// It carries the exit code to finish with and is never printed.
type relaunchError struct {
	code int
}

func (e *relaunchError) Error() string { return "relaunched with elevated privileges" }

// usageArgs wraps a positional-argument validator so its failures count as
// usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func exitCode(err error) int {
	var (
		usageErr    *usageError
		relaunchErr *relaunchError
		notFound    *fsop.PathNotFoundError
		opErr       *fsop.OpError
		elevErr     *elevate.Error
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &relaunchErr):
		return relaunchErr.code
	case errors.As(err, &usageErr):
		return exitUsage
	case errors.As(err, &notFound):
		return exitNotFound
	case errors.As(err, &opErr):
		return exitFilesystem
	case errors.As(err, &elevErr):
		return exitElevation
	case isCobraUsage(err):
		return exitUsage
	default:
		return exitFilesystem
	}
}

// cobraUsagePrefixes are the plain errors cobra returns for command lines it
// cannot resolve before any flag or argument validator runs.
var cobraUsagePrefixes = []string{
	"unknown command ",
	"unknown flag: ",
	"unknown shorthand flag: ",
	"required flag(s) ",
}

func isCobraUsage(err error) bool {
	msg := err.Error()
	for _, prefix := range cobraUsagePrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// report prints err, unless it only signals a relaunch, and maps it to an
// exit code.
func report(err error) int {
	var relaunchErr *relaunchError
	if err != nil && !errors.As(err, &relaunchErr) {
		ui.Error("Error", "%v", err)
	}
	return exitCode(err)
}
