// Package fsutil holds the file helpers shared by the hosts and manifest
// writers.
package fsutil

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
)

// ErrFileAccess marks failures to read or write a target file.
var ErrFileAccess = errors.New("file access")

// AccessError wraps err with msg and marks it as ErrFileAccess.
func AccessError(err error, msg string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, msg, args...), ErrFileAccess)
}

// WriteFileAtomic replaces path with data through a temp file in the same
// directory. Symlinks are followed so the link target is rewritten, and
// the existing file's mode and owner are kept; new files get perm.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	uid, gid := -1, -1
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
		if st, ok := info.Sys().(*syscall.Stat_t); ok {
			uid, gid = int(st.Uid), int(st.Gid)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if errors.Is(err, os.ErrPermission) && uid >= 0 {
		// directory is not writable, the file itself may be
		return writeInPlace(path, data)
	}
	if err != nil {
		return AccessError(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return AccessError(err, "write %s", path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return AccessError(err, "sync %s", path)
	}
	if err := tmp.Close(); err != nil {
		return AccessError(err, "close %s", path)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return AccessError(err, "chmod %s", path)
	}
	if uid >= 0 && (uid != os.Geteuid() || gid != os.Getegid()) {
		if err := os.Chown(tmpName, uid, gid); err != nil {
			return AccessError(err, "chown %s", path)
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return AccessError(err, "replace %s", path)
	}
	return nil
}

func writeInPlace(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return AccessError(err, "open %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return AccessError(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return AccessError(err, "close %s", path)
	}
	return nil
}
