package app

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/unidict-shared/internal/config"
	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/unidict-shared/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// NewSystemInfo combines the ldflags build variables with the deployment
// settings from cfg.
func NewSystemInfo(cfg config.BuildConfig) types.SystemInfo {
	features := slices.Clone(cfg.Features)
	if features == nil {
		features = []string{}
	}
	return types.SystemInfo{
		Version:     Version,
		BuildTime:   BuildTime,
		Environment: cfg.Environment,
		Features:    features,
	}
}
