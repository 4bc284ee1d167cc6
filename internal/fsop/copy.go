package fsop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"xfetch/internal/plog"
)

// Import copies src into the directory destDir, keeping the source's base
// name. Directories are copied recursively and merged into an existing
// destination: files present on both sides are overwritten, others are kept.
// An empty destDir means the current directory. destDir is created if needed.
func (e *Executor) Import(ctx context.Context, src, destDir string) (Result, error) {
	if destDir == "" {
		destDir = "."
	}

	srcInfo, kind, err := statSource(src)
	if err != nil {
		return Result{Path: src}, err
	}

	name, err := baseName(src)
	if err != nil {
		return Result{Path: src, Kind: kind}, &OpError{Op: "import " + kind.String(), Err: err}
	}
	dst := filepath.Join(destDir, name)
	res := Result{Path: dst, Kind: kind}
	op := "import " + kind.String()
	plog.Debug("Resolved import destination", "source", src, "destination", dst, "kind", kind)

	if err := checkDistinct(op, src, dst, srcInfo, kind); err != nil {
		return res, err
	}

	ok, err := e.confirmOverwrite(dst)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Skipped = true
		return res, nil
	}

	if err := os.MkdirAll(destDir, UserWritableDirPerms); err != nil {
		return res, &OpError{Op: op, Err: err}
	}

	if kind == KindFile {
		n, err := copyFile(src, dst, srcInfo)
		if err != nil {
			return res, &OpError{Op: op, Err: err}
		}
		res.Files, res.Bytes = 1, n
		return res, nil
	}

	stats, err := copyTree(ctx, src, dst, e.workers())
	res.Files, res.Bytes = stats.files, stats.bytes
	if err != nil {
		return res, &OpError{Op: op, Err: err}
	}
	return res, nil
}

// Copy copies src to exactly dst. Directories are copied recursively. When
// dst exists and the overwrite is confirmed, a file source overwrites a
// regular destination file and replaces a destination symlink (the link's
// target is left alone); a file source cannot replace a directory. A
// directory source removes any existing destination before copying.
func (e *Executor) Copy(ctx context.Context, src, dst string) (Result, error) {
	srcInfo, kind, err := statSource(src)
	if err != nil {
		return Result{Path: src}, err
	}
	res := Result{Path: dst, Kind: kind}
	op := "copy " + kind.String()

	if err := checkDistinct(op, src, dst, srcInfo, kind); err != nil {
		return res, err
	}

	dstInfo, statErr := os.Lstat(dst)
	ok, err := e.confirmOverwrite(dst)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Skipped = true
		return res, nil
	}

	if kind == KindFile {
		n, err := copyFile(src, dst, srcInfo)
		if err != nil {
			return res, &OpError{Op: op, Err: err}
		}
		res.Files, res.Bytes = 1, n
		return res, nil
	}

	if statErr == nil {
		plog.Debug("Replacing destination", "path", dst, "mode", dstInfo.Mode())
		if err := os.RemoveAll(dst); err != nil {
			return res, &OpError{Op: op, Err: err}
		}
	}
	stats, err := copyTree(ctx, src, dst, e.workers())
	res.Files, res.Bytes = stats.files, stats.bytes
	if err != nil {
		return res, &OpError{Op: op, Err: err}
	}
	return res, nil
}

// baseName returns the final element of src after making it absolute, so
// that "." and "dir/" resolve to a real name.
func baseName(src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", err
	}
	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." || name == filepath.VolumeName(abs) {
		return "", fmt.Errorf("cannot determine a name for %s", src)
	}
	return name, nil
}
