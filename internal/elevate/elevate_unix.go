//go:build !windows

package elevate

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"xfetch/internal/plog"
	"xfetch/internal/ui"
)

// euidChecker treats the process as elevated when its effective user is root.
type euidChecker struct {
	geteuid func() int
}

func (c euidChecker) IsElevated() (bool, error) {
	return c.geteuid() == 0, nil
}

func platformChecker() Checker {
	return euidChecker{geteuid: unix.Geteuid}
}

// sudoRelauncher runs the program again through sudo in the foreground and
// waits for it.
type sudoRelauncher struct {
	sudo string
}

func platformRelauncher() Relauncher {
	return sudoRelauncher{sudo: "sudo"}
}

func (r sudoRelauncher) Relaunch(ctx context.Context, exe string, args []string) (int, error) {
	// The child keeps our terminal so sudo can ask for a password.
	cmd := exec.CommandContext(ctx, r.sudo, append([]string{exe}, args...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	plog.Debug("Relaunching through sudo", "sudo", r.sudo, "exe", exe, "args", args)
	err := cmd.Run()
	if err == nil {
		ui.Plain("Elevated privileges granted.")
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ui.Plain("Failed to obtain elevated privileges.")
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
