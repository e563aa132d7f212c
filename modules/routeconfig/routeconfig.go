// Package routeconfig loads the default route policy a hugemv invocation
// falls back to when its flags don't override it, from a TOML file local
// to the working directory layered over one in the user's home.
package routeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/hugemv/modules/policy"
)

const fileName = ".hugemv.toml"

// Config is the on-disk default policy, merged into the caller's Policy
// whenever a flag is left at its zero value.
type Config struct {
	CreateParents *bool `toml:"create_parents"`
	Overwrite     *bool `toml:"overwrite"`
	Depth         *int  `toml:"depth"`
}

// Load reads the global `~/.hugemv.toml`, then overlays `<dir>/.hugemv.toml`
// if present. A missing file at either layer is not an error.
func Load(dir string) (*Config, error) {
	cfg := &Config{}
	if home, err := os.UserHomeDir(); err == nil {
		if err := decodeInto(filepath.Join(home, fileName), cfg); err != nil {
			return nil, err
		}
	}
	if err := decodeInto(filepath.Join(dir, fileName), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeInto(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	overlay := &Config{}
	if _, err := toml.DecodeFile(path, overlay); err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	if overlay.CreateParents != nil {
		cfg.CreateParents = overlay.CreateParents
	}
	if overlay.Overwrite != nil {
		cfg.Overwrite = overlay.Overwrite
	}
	if overlay.Depth != nil {
		cfg.Depth = overlay.Depth
	}
	return nil
}

// Policy builds a policy.Policy from the config, defaulting every unset
// field to false.
func (c *Config) Policy() policy.Policy {
	return policy.Policy{
		CreateParents: c.CreateParents != nil && *c.CreateParents,
		Overwrite:     c.Overwrite != nil && *c.Overwrite,
	}
}

// WalkDepth returns the configured default depth, or 0 (unlimited) if unset.
func (c *Config) WalkDepth() int {
	if c.Depth == nil {
		return 0
	}
	return *c.Depth
}

func atomicEncode(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	_ = os.MkdirAll(dir, 0o755)
	tmp := filepath.Join(dir, fmt.Sprintf(".hugemv-%d.toml", time.Now().UnixNano()))
	fd, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(fd)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		fd.Close()
		os.Remove(tmp)
		return err
	}
	if err := fd.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Save writes cfg to `<dir>/.hugemv.toml`, replacing it atomically.
func Save(dir string, cfg *Config) error {
	return atomicEncode(filepath.Join(dir, fileName), cfg)
}
