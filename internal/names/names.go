// Package names derives default database and domain names from free-form
// folder names typed at the prompt.
package names

import (
	"regexp"
	"strings"
)

var (
	dbUnsafe     = regexp.MustCompile(`[^A-Za-z0-9\-]`)
	domainUnsafe = regexp.MustCompile(`[^A-Za-z0-9]`)
	dbSeparators = strings.NewReplacer(" ", "-", "_", "-")
)

// DatabaseName turns key into a hyphenated slug: lower-cased, spaces and
// underscores become hyphens, anything else outside [a-z0-9-] is dropped.
func DatabaseName(key string) string {
	key = strings.ToLower(key)
	key = dbSeparators.Replace(key)
	return dbUnsafe.ReplaceAllString(key, "")
}

// DomainName lower-cases key, drops every non-alphanumeric character
// (hyphens included) and appends ext as-is.
func DomainName(key, ext string) string {
	key = strings.ToLower(key)
	return domainUnsafe.ReplaceAllString(key, "") + ext
}
