package models

import "fmt"

// AppBuildInfo describes the binary that is running. Values are injected at
// link time via -ldflags and default to "N/A".
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo fills empty fields with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// String renders the build info the way the CLI prints it.
func (b AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}
