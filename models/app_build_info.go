// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the build metadata injected with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Info returns the view served on /api/version. A non-empty version replaces
// the one baked into the binary.
func (b AppBuildInfo) Info(version string) AppInfo {
	if version == "" {
		version = b.version
	}
	return AppInfo{Version: version, Date: b.date, Commit: b.commit}
}

// AppInfo is the JSON form of the build metadata.
type AppInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
