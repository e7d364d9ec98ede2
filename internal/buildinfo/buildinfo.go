// Package buildinfo exposes version metadata for the CLI. Values are set at
// build time, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/getitem/internal/buildinfo.Version=1.2.3' -X 'github.com/flarebyte/getitem/internal/buildinfo.Date=2026-02-09'"
package buildinfo

import (
	"runtime/debug"
	"strings"
)

var (
	// Version is the semantic version or custom string.
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = moduleVersion()
	}
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 3)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if BuiltBy != "" {
		parts = append(parts, "by="+BuiltBy)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// moduleVersion is the main module version recorded by `go install`.
func moduleVersion() string {
	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return ""
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return ""
}
