// Package hosts appends name mappings to a hosts file.
package hosts

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"

	"github.com/yansircc/lochost/internal/fsutil"
	"github.com/yansircc/lochost/internal/template"
)

// Writer appends one "<ip> <domain>" mapping to the hosts file at path.
type Writer interface {
	Append(path, ip, domain string) error
}

// FileWriter is the Writer backed by the local filesystem.
type FileWriter struct{}

func (FileWriter) Append(path, ip, domain string) error {
	return Append(path, ip, domain)
}

// Append writes a line break followed by "<ip> <domain>" to the end of path
// while holding an exclusive flock. Either the whole line lands or the file
// is truncated back to its previous size.
func Append(path, ip, domain string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fsutil.AccessError(err, "open hosts file %s", path)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fsutil.AccessError(err, "lock hosts file %s", path)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	info, err := f.Stat()
	if err != nil {
		return fsutil.AccessError(err, "stat hosts file %s", path)
	}
	size := info.Size()

	line := "\n" + template.HostsLine(ip, domain)
	if err := appendLine(f, size, line); err != nil {
		return fsutil.AccessError(err, "append to hosts file %s", path)
	}
	return nil
}

// truncateWriter is the part of *os.File appendLine needs.
type truncateWriter interface {
	io.Writer
	Truncate(size int64) error
}

// appendLine writes line in one call. On a failed or short write, w is
// truncated back to size so no partial line is left behind.
func appendLine(w truncateWriter, size int64, line string) error {
	n, err := io.WriteString(w, line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		if terr := w.Truncate(size); terr != nil {
			err = errors.CombineErrors(err, terr)
		}
		return err
	}
	return nil
}
