package template

import (
	"strings"
	"testing"
)

func TestHostsLine(t *testing.T) {
	got := HostsLine("192.168.10.10", "demo.dev")
	if got != "192.168.10.10 demo.dev" {
		t.Errorf("HostsLine() = %q, want %q", got, "192.168.10.10 demo.dev")
	}
}

func TestSiteMapping(t *testing.T) {
	got := SiteMapping("demo.dev", "/home/vagrant/code/demo/public")
	want := "    - map: demo.dev\n      to: /home/vagrant/code/demo/public"
	if got != want {
		t.Errorf("SiteMapping() = %q, want %q", got, want)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("SiteMapping() has %d lines, want 2", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, Indent) {
			t.Errorf("line %q missing %d-space indent", l, len(Indent))
		}
	}
}

func TestDatabaseEntry(t *testing.T) {
	tests := []struct {
		db   string
		want string
	}{
		{"demo", "    - demo"},
		{"my-cool-app", "    - my-cool-app"},
		{"", "    - "},
	}
	for _, tt := range tests {
		got := DatabaseEntry(tt.db)
		if got != tt.want {
			t.Errorf("DatabaseEntry(%q) = %q, want %q", tt.db, got, tt.want)
		}
	}
}
