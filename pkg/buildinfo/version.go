// Package buildinfo carries the version stamped into fingerbox binaries.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/fingerbox/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/fingerbox/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/fingerbox/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/fingerbox
//
// Version also scopes cache keys, so artifacts cut by one release are never
// served by another.
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the build information as three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// CachePrefix returns the prefix that scopes cache keys to this build.
func CachePrefix() string {
	return "fingerbox@" + Version + ":"
}
