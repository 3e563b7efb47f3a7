// Package manifest edits a Homestead provisioning manifest as plain text,
// splicing new entries in after anchor lines such as "sites:".
package manifest

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/yansircc/lochost/internal/fsutil"
)

const (
	SitesAnchor     = "sites:"
	DatabasesAnchor = "databases:"
)

// ErrAnchorMissing is returned when the anchor does not occur in the
// manifest. The file is left byte-identical.
var ErrAnchorMissing = errors.New("anchor not found in manifest")

// Editor inserts a block of text after an anchor in the manifest at path.
type Editor interface {
	InsertAfterAnchor(path, anchor, block string) error
}

// TextEditor treats the manifest as opaque text. Every call re-reads and
// rewrites the whole file; there is no locking between the read and the
// write.
type TextEditor struct{}

func (TextEditor) InsertAfterAnchor(path, anchor, block string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fsutil.AccessError(err, "read manifest %s", path)
	}

	content, found := Insert(string(data), anchor, block)
	if err := fsutil.WriteFileAtomic(path, []byte(content), 0644); err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrAnchorMissing, "%q in %s", anchor, path)
	}
	return nil
}

// Insert places "\n"+block right after the first occurrence of anchor in
// content. Later occurrences are left alone. The second result reports
// whether the anchor was found; if not, content is returned unchanged.
func Insert(content, anchor, block string) (string, bool) {
	i := strings.Index(content, anchor)
	if anchor == "" || i < 0 {
		return content, false
	}
	at := i + len(anchor)

	var b strings.Builder
	b.Grow(len(content) + len(block) + 1)
	b.WriteString(content[:at])
	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString(content[at:])
	return b.String(), true
}

// Mapping is one "- map: / to:" pair found under the sites anchor.
type Mapping struct {
	Domain string
	Target string
}

// Sites scans the lines following the first "sites:" anchor and returns
// the mappings until the next unindented line.
func Sites(content string) []Mapping {
	i := strings.Index(content, SitesAnchor)
	if i < 0 {
		return nil
	}
	rest := content[i+len(SitesAnchor):]

	var out []Mapping
	for n, line := range strings.Split(rest, "\n") {
		if n == 0 {
			continue // remainder of the anchor line
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' && !strings.HasPrefix(trimmed, "-") {
			break
		}
		switch {
		case strings.HasPrefix(trimmed, "- map:"):
			out = append(out, Mapping{Domain: strings.TrimSpace(strings.TrimPrefix(trimmed, "- map:"))})
		case strings.HasPrefix(trimmed, "to:") && len(out) > 0:
			out[len(out)-1].Target = strings.TrimSpace(strings.TrimPrefix(trimmed, "to:"))
		}
	}
	return out
}
