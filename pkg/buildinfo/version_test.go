package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	s := String()
	if !strings.HasPrefix(s, "version: v1.2.3\n") {
		t.Errorf("String() = %q", s)
	}
	if strings.Count(s, "\n") != 2 {
		t.Errorf("String() should have three lines, got %q", s)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} ") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestCachePrefix(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v0.3.0"
	if got := CachePrefix(); got != "fingerbox@v0.3.0:" {
		t.Errorf("CachePrefix() = %q", got)
	}
}
