// Package fsop performs the create, import and copy operations behind the
// subcommands. Every operation checks whether its destination already exists
// and, if so, asks a confirm.Decider before touching it.
//
// The existence check and the following write are not atomic; a concurrent
// process may change the destination in between.
package fsop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xfetch/internal/confirm"
	"xfetch/internal/plog"
)

// Permission bits for newly created entries.
const (
	UserWritableDirPerms  os.FileMode = 0755
	UserWritableFilePerms os.FileMode = 0644

	permUserWrite   os.FileMode = 0200
	permUserRWX     os.FileMode = 0700
	defaultBufferKB             = 256
)

// Kind tells whether an operation dealt with a file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("unknown_kind(%d)", int(k))
	}
}

// Result describes what an operation did.
type Result struct {
	// Path is the final destination path.
	Path string
	Kind Kind
	// Skipped is set when the destination existed and the user declined.
	Skipped bool
	Files   int
	Bytes   int64
}

// OpError is a failed filesystem call.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// PathNotFoundError is returned when a source is neither a regular file nor
// a directory, which includes missing paths and broken symlinks.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("the specified path does not exist: %s", e.Path)
}

// Executor runs one operation per call.
type Executor struct {
	Decider confirm.Decider
	// Workers bounds concurrent file copies inside a directory tree.
	// Values below 1 mean one.
	Workers int
}

// New creates an Executor that asks d before overwriting anything.
func New(d confirm.Decider) *Executor {
	return &Executor{Decider: d, Workers: 1}
}

func (e *Executor) workers() int {
	if e.Workers < 1 {
		return 1
	}
	return e.Workers
}

// confirmOverwrite returns true when path is free or the user allowed the
// overwrite.
func (e *Executor) confirmOverwrite(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			plog.Debug("Destination not inspectable, proceeding", "path", path, "error", err)
		}
		return true, nil
	}
	if e.Decider == nil {
		return false, nil
	}
	ok, err := e.Decider.Confirm(path)
	if err != nil {
		return false, &OpError{Op: "confirm overwrite of " + path, Err: err}
	}
	plog.Debug("Overwrite decision", "path", path, "confirmed", ok)
	return ok, nil
}

// statSource resolves src to a regular file or a directory.
func statSource(src string) (os.FileInfo, Kind, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, 0, &PathNotFoundError{Path: src}
	}
	switch {
	case info.Mode().IsRegular():
		return info, KindFile, nil
	case info.IsDir():
		return info, KindDirectory, nil
	default:
		return nil, 0, &PathNotFoundError{Path: src}
	}
}

// isWithin reports whether child is parent itself or lies below it.
func isWithin(parent, child string) bool {
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absParent, absChild)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// checkDistinct rejects copies whose destination is the source, lies inside
// it, or is an existing entry that contains the source. Overwriting such a
// destination would destroy the source before it is read.
func checkDistinct(op, src, dst string, srcInfo os.FileInfo, kind Kind) error {
	if kind == KindDirectory && isWithin(src, dst) {
		return &OpError{Op: op, Err: fmt.Errorf("cannot copy %s into itself (%s)", src, dst)}
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return &OpError{Op: op, Err: fmt.Errorf("%s and %s are the same file", src, dst)}
	}
	if _, err := os.Lstat(dst); err == nil && isWithin(dst, src) {
		return &OpError{Op: op, Err: fmt.Errorf("cannot overwrite %s, it contains the source %s", dst, src)}
	}
	return nil
}
