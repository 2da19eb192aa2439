package repo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Config wraps the repository's ini-format config file (.git/config).
// Keys are addressed as "section.key", e.g. "user.name".
type Config struct {
	file *ini.File
}

func (r *Repo) configPath() string {
	return filepath.Join(r.GitDir, "config")
}

// ReadConfig loads .git/config. A missing file yields an empty config.
func (r *Repo) ReadConfig() (*Config, error) {
	f, err := ini.Load(r.configPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{file: ini.Empty()}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &Config{file: f}, nil
}

// Get returns the value for a "section.key" name and whether it is set.
func (c *Config) Get(key string) (string, bool) {
	section, name, ok := splitConfigKey(key)
	if !ok {
		return "", false
	}
	sec := c.file.Section(section)
	if !sec.HasKey(name) {
		return "", false
	}
	return sec.Key(name).String(), true
}

// User returns the configured identity used for commit authorship.
// Missing user.name or user.email is a hard error at the call site; the
// store itself never defaults these.
func (c *Config) User() (name, email string, err error) {
	name, okName := c.Get("user.name")
	email, okEmail := c.Get("user.email")
	if !okName || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("user.name is not configured")
	}
	if !okEmail || strings.TrimSpace(email) == "" {
		return "", "", fmt.Errorf("user.email is not configured")
	}
	return name, email, nil
}

// DefaultBranch returns init.defaultbranch, or DefaultBranch when unset.
func (c *Config) DefaultBranch() string {
	if branch, ok := c.Get("init.defaultbranch"); ok && strings.TrimSpace(branch) != "" {
		return branch
	}
	return DefaultBranch
}

// SetConfig sets a "section.key" value and rewrites .git/config
// atomically via a temp file in the same directory.
func (r *Repo) SetConfig(key, value string) error {
	section, name, ok := splitConfigKey(key)
	if !ok {
		return fmt.Errorf("set config: invalid key %q (want section.key)", key)
	}

	cfg, err := r.ReadConfig()
	if err != nil {
		return err
	}
	cfg.file.Section(section).Key(name).SetValue(value)

	var buf bytes.Buffer
	if _, err := cfg.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("set config: serialize: %w", err)
	}

	tmp, err := os.CreateTemp(r.GitDir, ".config-tmp-*")
	if err != nil {
		return fmt.Errorf("set config: tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("set config: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("set config: close: %w", err)
	}
	if err := os.Rename(tmpName, r.configPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("set config: rename: %w", err)
	}
	return nil
}

func splitConfigKey(key string) (section, name string, ok bool) {
	section, name, ok = strings.Cut(key, ".")
	if !ok || section == "" || name == "" {
		return "", "", false
	}
	return section, name, true
}
