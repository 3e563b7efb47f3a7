package names

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	dbAlphabet     = regexp.MustCompile(`^[a-z0-9-]*$`)
	domainAlphabet = regexp.MustCompile(`^[a-z0-9]*$`)
)

var samples = []string{
	"",
	"My_Cool App",
	"  leading and trailing  ",
	"already-a-slug",
	"UPPER_case_Name",
	"dots.and/slashes\\here",
	"émigré café",
	"tabs\tand\nnewlines",
	"a__b  c--d",
	"100% legit!",
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My_Cool App", "my-cool-app"},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
		{"Acme Corp.", "acme-corp"},
		{"a__b  c", "a--b--c"},
		{"100% legit!", "100-legit"},
		{"café", "caf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DatabaseName(tt.in), "DatabaseName(%q)", tt.in)
	}
}

func TestDatabaseName_AlphabetAndIdempotence(t *testing.T) {
	for _, s := range samples {
		once := DatabaseName(s)
		assert.Regexp(t, dbAlphabet, once, "DatabaseName(%q)", s)
		assert.Equal(t, once, DatabaseName(once), "DatabaseName not idempotent for %q", s)
	}
}

func TestDomainName(t *testing.T) {
	tests := []struct {
		in, ext string
		want    string
	}{
		{"my-cool-app", ".dev", "mycoolapp.dev"},
		{"My_Cool App", ".test", "mycoolapp.test"},
		{"", ".dev", ".dev"},
		{"site", "", "site"},
		{"site", "local", "sitelocal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DomainName(tt.in, tt.ext), "DomainName(%q, %q)", tt.in, tt.ext)
	}
}

func TestDomainName_ExtensionIsAppendedVerbatim(t *testing.T) {
	for _, s := range samples {
		for _, ext := range []string{"", ".dev", ".Loc_al"} {
			got := DomainName(s, ext)
			bare := DomainName(s, "")
			assert.Equal(t, bare+ext, got)
			assert.Regexp(t, domainAlphabet, bare, "DomainName(%q, \"\")", s)
		}
	}
}
