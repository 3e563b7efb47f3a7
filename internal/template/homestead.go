package template

import "fmt"

// Indent is the fixed indentation used for entries under the manifest's
// "sites:" and "databases:" keys.
const Indent = "    "

// HostsLine renders a hosts file mapping.
func HostsLine(ip, domain string) string {
	return ip + " " + domain
}

// SiteMapping renders the two-line block inserted under "sites:".
func SiteMapping(domain, target string) string {
	return fmt.Sprintf("%s- map: %s\n%s  to: %s", Indent, domain, Indent, target)
}

// DatabaseEntry renders the one-line block inserted under "databases:".
func DatabaseEntry(database string) string {
	return Indent + "- " + database
}
