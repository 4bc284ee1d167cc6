package elevate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"xfetch/internal/ui"
)

type fakeRelauncher struct {
	calls    int
	exe      string
	args     []string
	exitCode int
	err      error
}

func (f *fakeRelauncher) Relaunch(_ context.Context, exe string, args []string) (int, error) {
	f.calls++
	f.exe = exe
	f.args = args
	return f.exitCode, f.err
}

func newTestGate(elevated bool, checkErr error, r *fakeRelauncher) *Gate {
	return &Gate{
		Checker:    CheckerFunc(func() (bool, error) { return elevated, checkErr }),
		Relauncher: r,
		Executable: func() (string, error) { return "/usr/local/bin/xfetch", nil },
	}
}

func TestGateEnsure(t *testing.T) {
	var out bytes.Buffer
	ui.SetOutput(&out)
	t.Cleanup(func() { ui.SetOutput(os.Stderr) })
	ctx := context.Background()

	t.Run("Elevated - Proceeds Without Relaunch", func(t *testing.T) {
		r := &fakeRelauncher{}
		d, err := newTestGate(true, nil, r).Ensure(ctx, []string{"create", "x"}, false)
		if err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}
		if d.Relaunched || r.calls != 0 {
			t.Errorf("expected no relaunch, got decision %+v and %d calls", d, r.calls)
		}
	})

	t.Run("Not Elevated - Relaunches With Same Arguments", func(t *testing.T) {
		out.Reset()
		r := &fakeRelauncher{exitCode: 3}
		d, err := newTestGate(false, nil, r).Ensure(ctx, []string{"import", "a b", "dest"}, false)
		if err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}
		if !d.Relaunched || d.ExitCode != 3 {
			t.Errorf("expected relaunch with exit code 3, got %+v", d)
		}
		if r.exe != "/usr/local/bin/xfetch" {
			t.Errorf("unexpected executable %q", r.exe)
		}
		want := []string{MarkerFlag, "import", "a b", "dest"}
		if strings.Join(r.args, "|") != strings.Join(want, "|") {
			t.Errorf("expected args %v, got %v", want, r.args)
		}
		if !strings.Contains(out.String(), "Requesting elevated privileges...") {
			t.Errorf("expected elevation notice, got %q", out.String())
		}
	})

	t.Run("Relaunched Child Still Not Elevated", func(t *testing.T) {
		r := &fakeRelauncher{}
		_, err := newTestGate(false, nil, r).Ensure(ctx, nil, true)
		if !errors.Is(err, ErrStillNotElevated) {
			t.Fatalf("expected ErrStillNotElevated, got %v", err)
		}
		if r.calls != 0 {
			t.Errorf("a relaunched child must not relaunch again, got %d calls", r.calls)
		}
	})

	t.Run("Relaunch Failure", func(t *testing.T) {
		r := &fakeRelauncher{err: errors.New("sudo: not found")}
		_, err := newTestGate(false, nil, r).Ensure(ctx, nil, false)
		var elevErr *Error
		if !errors.As(err, &elevErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if !strings.Contains(err.Error(), "sudo: not found") {
			t.Errorf("expected cause in message, got %v", err)
		}
	})

	t.Run("Check Failure", func(t *testing.T) {
		r := &fakeRelauncher{}
		_, err := newTestGate(false, errors.New("token unavailable"), r).Ensure(ctx, nil, false)
		var elevErr *Error
		if !errors.As(err, &elevErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if r.calls != 0 {
			t.Errorf("expected no relaunch after a failed check")
		}
	})

	t.Run("Caller Arguments Are Not Modified", func(t *testing.T) {
		args := make([]string, 2, 8)
		args[0], args[1] = "create", "x"
		r := &fakeRelauncher{}
		if _, err := newTestGate(false, nil, r).Ensure(ctx, args, false); err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}
		if extended := args[:3]; extended[2] != "" {
			t.Error("marker flag leaked into the caller's backing array")
		}
	})
}

func TestNewGateUsesPlatformDefaults(t *testing.T) {
	g := NewGate()
	if g.Checker == nil || g.Relauncher == nil || g.Executable == nil {
		t.Fatalf("expected a fully populated gate, got %+v", g)
	}
	if _, err := g.Checker.IsElevated(); err != nil {
		t.Errorf("platform check failed: %v", err)
	}
}
