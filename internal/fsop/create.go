package fsop

import (
	"os"

	"xfetch/internal/plog"
)

// Create makes an empty file at path, or an empty directory when dir is set.
//
// A directory is created without parents. When path exists and the overwrite
// is confirmed, a file is truncated to zero bytes while a directory request
// fails with "file exists" and leaves the existing entry untouched.
func (e *Executor) Create(path string, dir bool) (Result, error) {
	res := Result{Path: path, Kind: KindFile}
	if dir {
		res.Kind = KindDirectory
	}

	ok, err := e.confirmOverwrite(path)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Skipped = true
		return res, nil
	}

	if dir {
		plog.Debug("Creating directory", "path", path)
		if err := os.Mkdir(path, UserWritableDirPerms); err != nil {
			return res, &OpError{Op: "create directory", Err: err}
		}
		return res, nil
	}

	plog.Debug("Creating file", "path", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, UserWritableFilePerms)
	if err != nil {
		return res, &OpError{Op: "create file", Err: err}
	}
	if err := f.Close(); err != nil {
		return res, &OpError{Op: "create file", Err: err}
	}
	res.Files = 1
	return res, nil
}
