// Package version reports which mclock build is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/example/mclock/internal/version.Version=v0.3.0 \
//	  -X github.com/example/mclock/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Modified  bool // built from a dirty work tree
}

// Current returns the build info. Values not set through ldflags are taken
// from the VCS stamp the Go toolchain embeds, when there is one.
func Current() Build {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Build {
	b := Build{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
	if info == nil {
		return b
	}

	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.BuildTime == "" {
				b.BuildTime = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// String returns the text printed by mclock --version.
func String() string {
	return Current().String()
}

func (b Build) String() string {
	commit := shortCommit(b.Commit)
	if b.Modified {
		commit += "-dirty"
	}
	s := fmt.Sprintf("mclock %s (commit: %s, built: %s", b.Version, commit, orUnknown(b.BuildTime))
	if b.GoVersion != "" {
		s += ", " + b.GoVersion
	}
	return s + ")"
}

func shortCommit(c string) string {
	if c == "" {
		return "unknown"
	}
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
