// Package version reports build information
package version

import "runtime/debug"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X 'kudoswall/internal/core/version.version=v0.1.0' -X ...commit=abcd -X ...date=2026-01-02"
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// Service is the binary name reported by Info; each main sets it
var Service = "kudoswall"

// Info returns the build info, falling back to the vcs stamp when commit was not injected
func Info() BuildInfo {
	c := commit
	if c == "" {
		c = "none"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					c = s.Value
				}
			}
		}
	}
	return BuildInfo{Service: Service, Version: version, Commit: c, Date: date}
}
