// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Version information is injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/pack84/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// build describes the binary, preferring ldflags values and filling
// gaps from the toolchain's build info.
type build struct {
	version string
	commit  string
	dirty   bool
	time    string
}

func current() build {
	b := build{
		version: Version,
		commit:  GitCommit,
		dirty:   GitDirty == "true",
		time:    BuildTime,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.commit == "unknown" {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				b.commit = shorten(setting.Value)
			case "vcs.modified":
				b.dirty = setting.Value == "true"
			case "vcs.time":
				if b.time == "unknown" {
					b.time = setting.Value
				}
			}
		}
	}
	return b
}

func shorten(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	b := current()
	dirty := ""
	if b.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.version, b.commit, dirty, b.time)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return Version
}
