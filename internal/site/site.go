// Package site models the values collected for one new virtual host. The
// fields are filled through a chain of stage types so each default can only
// be computed once the field it derives from is known.
package site

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/yansircc/lochost/internal/names"
)

// ErrNoFolder is returned by Begin when no folder name was given.
var ErrNoFolder = errors.New("no folder set")

// Session is the complete set of answers for a new site.
type Session struct {
	folder   string
	suffix   string
	database string
	domain   string
}

func (s Session) Folder() string   { return s.folder }
func (s Session) Suffix() string   { return s.suffix }
func (s Session) Database() string { return s.database }
func (s Session) Domain() string   { return s.domain }

// SiteTarget is the path inside the VM the domain is served from.
func (s Session) SiteTarget(sitesPath string) string {
	return sitesPath + s.folder + s.suffix
}

// FolderStage holds the folder name; the suffix is next.
type FolderStage struct {
	folder string
}

// Begin starts a session for folder.
func Begin(folder string) (FolderStage, error) {
	if strings.TrimSpace(folder) == "" {
		return FolderStage{}, ErrNoFolder
	}
	return FolderStage{folder: folder}, nil
}

func (f FolderStage) Folder() string { return f.folder }

// WithSuffix applies suffix when confirmed, otherwise an empty suffix.
func (f FolderStage) WithSuffix(confirmed bool, suffix string) SuffixStage {
	if !confirmed {
		suffix = ""
	}
	return SuffixStage{folder: f.folder, suffix: suffix}
}

// SuffixStage holds folder and suffix; the database name is next.
type SuffixStage struct {
	folder string
	suffix string
}

// DefaultDatabase is the database name suggested for the folder.
func (s SuffixStage) DefaultDatabase() string {
	return names.DatabaseName(s.folder)
}

func (s SuffixStage) WithDatabase(database string) DatabaseStage {
	return DatabaseStage{folder: s.folder, suffix: s.suffix, database: database}
}

// DatabaseStage holds everything but the domain.
type DatabaseStage struct {
	folder   string
	suffix   string
	database string
}

// DefaultDomain is the domain suggested for the database name.
func (d DatabaseStage) DefaultDomain(ext string) string {
	return names.DomainName(d.database, ext)
}

func (d DatabaseStage) WithDomain(domain string) Session {
	return Session{folder: d.folder, suffix: d.suffix, database: d.database, domain: domain}
}
