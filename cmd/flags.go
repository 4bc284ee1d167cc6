package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"xfetch/internal/fsop"
	"xfetch/internal/ui"
)

// workerCount is a pflag.Value that only accepts positive integers, so a bad
// --workers value fails during flag parsing.
type workerCount int

func (w *workerCount) String() string { return strconv.Itoa(int(*w)) }

func (w *workerCount) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid worker count %q", s)
	}
	if n < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", n)
	}
	*w = workerCount(n)
	return nil
}

func (w *workerCount) Type() string { return "int" }

// transferOptions are the flags shared by import, copy and paste.
type transferOptions struct {
	workers   workerCount
	clipboard bool
}

func bindTransferFlags(fs *pflag.FlagSet, opts *transferOptions) {
	opts.workers = 1
	fs.VarP(&opts.workers, "workers", "w", "number of files copied concurrently inside a directory")
	fs.BoolVarP(&opts.clipboard, "clipboard", "c", false, "copy the destination path to the clipboard")
}

// publish puts the absolute destination path on the clipboard when asked
// to. Clipboard trouble never fails the command.
func (o *transferOptions) publish(path string) {
	if !o.clipboard {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := writeClipboard(abs); err != nil {
		ui.Warning("Warning", "could not copy to clipboard: %v", err)
		return
	}
	ui.Info("Clipboard", "Destination path copied: %s", abs)
}

// noun is the capitalized kind used at the start of status messages.
func noun(kind fsop.Kind) string {
	if kind == fsop.KindDirectory {
		return "Directory"
	}
	return "File"
}

// summary renders the counters of a transfer, e.g. "3 files, 1.2 kB".
func summary(res fsop.Result) string {
	size := humanize.Bytes(uint64(res.Bytes))
	if res.Kind == fsop.KindFile {
		return size
	}
	if res.Files == 1 {
		return "1 file, " + size
	}
	return fmt.Sprintf("%d files, %s", res.Files, size)
}
