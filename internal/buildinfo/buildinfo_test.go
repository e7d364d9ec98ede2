package buildinfo

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, version string, ok bool) {
	t.Helper()
	oldRead := readBuildInfo
	oldVersion, oldCommit, oldDate, oldBy := Version, Commit, Date, BuiltBy
	t.Cleanup(func() {
		readBuildInfo = oldRead
		Version, Commit, Date, BuiltBy = oldVersion, oldCommit, oldDate, oldBy
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		if !ok {
			return nil, false
		}
		return &debug.BuildInfo{Main: debug.Module{Version: version}}, true
	}
	Version, Commit, Date, BuiltBy = "", "", "", ""
}

func TestSummary(t *testing.T) {
	cases := []struct {
		name    string
		modVer  string
		ok      bool
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "no info", want: "dev"},
		{name: "devel module", modVer: "(devel)", ok: true, want: "dev"},
		{name: "installed module", modVer: "v0.3.1", ok: true, want: "v0.3.1"},
		{name: "ldflags win", modVer: "v0.3.1", ok: true, version: "1.2.3", want: "1.2.3"},
		{name: "commit and date", version: "1.0.0", commit: "0123456789abcdef", date: "2026-02-09",
			want: "1.0.0 (commit=0123456, date=2026-02-09)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withBuildInfo(t, tc.modVer, tc.ok)
			Version, Commit, Date = tc.version, tc.commit, tc.date
			if got := Summary(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
