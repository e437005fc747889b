package driver

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// ChecksConfig toggles individual validation passes. Disabled checks are
// filtered from the merged output, not skipped, so one snapshot run yields
// one stable diagnostic set regardless of toggles.
type ChecksConfig struct {
	MissingFields bool `toml:"missing_fields"`
	MatchArms     bool `toml:"match_arms"`
	OkWrap        bool `toml:"ok_wrap"`
}

// Config is the driver section of quill.toml.
type Config struct {
	// Jobs caps validation parallelism; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics bounds the per-function bag.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Cache enables the cross-process definition cache.
	Cache bool `toml:"cache"`
	// CacheDir overrides the default cache location.
	CacheDir string `toml:"cache_dir"`

	Checks ChecksConfig `toml:"checks"`
}

func DefaultConfig() Config {
	return Config{
		MaxDiagnostics: 256,
		Checks: ChecksConfig{
			MissingFields: true,
			MatchArms:     true,
			OkWrap:        true,
		},
	}
}

// LoadConfig reads quill.toml at path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.MaxDiagnostics <= 0 {
		cfg.MaxDiagnostics = DefaultConfig().MaxDiagnostics
	}
	return cfg, nil
}
