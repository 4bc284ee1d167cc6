package fsop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"xfetch/internal/plog"
)

var ioBufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, defaultBufferKB*1024)
		return &b
	},
}

type treeStats struct {
	files int
	bytes int64
}

// copyTree reproduces the tree rooted at src under dst. Directories and
// symlinks are created in walk order; regular file contents are copied by up
// to workers goroutines. Entries that are neither are skipped.
func copyTree(ctx context.Context, src, dst string, workers int) (treeStats, error) {
	var files, written atomic.Int64

	// WalkDir does not follow a symlinked root.
	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return treeStats{}, fmt.Errorf("failed to resolve source directory %s: %w", src, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			plog.Debug("Creating directory", "path", target)
			if err := os.MkdirAll(target, info.Mode().Perm()|permUserRWX); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			// MkdirAll leaves an existing directory's mode alone.
			if err := os.Chmod(target, info.Mode().Perm()|permUserRWX); err != nil {
				return fmt.Errorf("failed to set permissions on directory %s: %w", target, err)
			}
		case info.Mode()&os.ModeSymlink != 0:
			if err := copySymlink(path, target); err != nil {
				return err
			}
			files.Add(1)
		case info.Mode().IsRegular():
			g.Go(func() error {
				n, err := copyFile(path, target, info)
				if err != nil {
					return err
				}
				files.Add(1)
				written.Add(n)
				return nil
			})
		default:
			plog.Warn("Skipping special file", "path", path, "mode", info.Mode())
		}
		return nil
	})

	waitErr := g.Wait()
	stats := treeStats{files: int(files.Load()), bytes: written.Load()}
	// A failed copy cancels gctx, which the walk then reports; prefer the cause.
	if waitErr != nil {
		return stats, waitErr
	}
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) && ctx.Err() != nil {
			return stats, fmt.Errorf("copy interrupted: %w", ctx.Err())
		}
		return stats, walkErr
	}
	return stats, nil
}

// copyFile writes the contents of src to dst, truncating dst if it exists.
// A symlink at dst is replaced, never written through. Mode bits are taken
// from the source with the owner-write bit always set, and the modification
// time is carried over.
func copyFile(src, dst string, info os.FileInfo) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer in.Close()

	if dstInfo, err := os.Lstat(dst); err == nil && dstInfo.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(dst); err != nil {
			return 0, fmt.Errorf("failed to replace symlink %s: %w", dst, err)
		}
	}

	perm := info.Mode().Perm() | permUserWrite
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open destination file %s: %w", dst, err)
	}
	defer out.Close()

	// The file may have existed with different permissions.
	if err := out.Chmod(perm); err != nil {
		return 0, fmt.Errorf("failed to set permissions on destination file %s: %w", dst, err)
	}

	bufPtr := ioBufferPool.Get().(*[]byte)
	defer ioBufferPool.Put(bufPtr)

	n, err := io.CopyBuffer(out, in, *bufPtr)
	if err != nil {
		return n, fmt.Errorf("failed to copy content from %s to %s: %w", src, dst, err)
	}

	// Flush before setting timestamps.
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to close destination file %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return n, fmt.Errorf("failed to set timestamps on %s: %w", dst, err)
	}
	plog.Debug("Copied file", "source", src, "destination", dst, "bytes", n)
	return n, nil
}

// copySymlink recreates the link at src as dst, replacing whatever dst was.
func copySymlink(src, dst string) error {
	linkTarget, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("failed to read symlink %s: %w", src, err)
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}
	if err := os.Symlink(linkTarget, dst); err != nil {
		return fmt.Errorf("failed to create symlink %s -> %s: %w", dst, linkTarget, err)
	}
	return nil
}
