package metadata

import (
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Set through -ldflags "-X github.com/labi-le/xbind/internal/metadata.Version=...".
var (
	Version    = "freshest"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "freshest" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && CommitHash == "n/a":
			CommitHash = s.Value
		case s.Key == "vcs.time" && BuildTime == "n/a":
			BuildTime = s.Value
		}
	}
}

// Build logs the binary's version fields.
type Build struct{}

func (Build) MarshalZerologObject(e *zerolog.Event) {
	e.Str("v", Version).
		Str("commit_hash", CommitHash).
		Str("build_time", BuildTime)
}
