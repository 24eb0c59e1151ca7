package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

const (
	DefaultStars       = 2000
	DefaultMode        = "parallel"
	DefaultIterations  = 1000
	DefaultFPS         = 30
	DefaultSampleEvery = 50
)

// Config is the run configuration shared by every command. The yaml tags
// name the keys of a YAML file; the gcfg tags name the variables of the
// [galaxy] section of an INI file.
type Config struct {
	Stars       int    `yaml:"stars" gcfg:"stars"`
	Mode        string `yaml:"mode" gcfg:"mode"`
	Threads     int    `yaml:"threads" gcfg:"threads"`
	Seed        int64  `yaml:"seed" gcfg:"seed"`
	Iterations  int    `yaml:"iterations" gcfg:"iterations"`
	FoldChunk   int    `yaml:"fold_chunk" gcfg:"fold-chunk"`
	FPS         int    `yaml:"fps" gcfg:"fps"`
	SampleEvery int    `yaml:"sample_every" gcfg:"sample-every"`
}

type iniFile struct {
	Galaxy Config
}

func DefaultConfig() *Config {
	return &Config{
		Stars:       DefaultStars,
		Mode:        DefaultMode,
		Iterations:  DefaultIterations,
		FPS:         DefaultFPS,
		SampleEvery: DefaultSampleEvery,
	}
}

// Load reads path on top of DefaultConfig. Files ending in .ini, .gcfg or
// .cfg are parsed as INI with a [galaxy] section, anything else as YAML.
func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOnto(path string, base *Config) (*Config, error) {
	cfg := new(Config)
	*cfg = *base

	if isINI(path) {
		f := iniFile{Galaxy: *cfg}
		if err := gcfg.ReadFileInto(&f, path); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		*cfg = f.Galaxy
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isINI(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".gcfg", ".cfg":
		return true
	}
	return false
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Stars <= 0 {
		return fmt.Errorf("config: stars must be positive, got %d", c.Stars)
	}
	if _, err := galaxy.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Threads < 0 {
		return fmt.Errorf("config: threads must not be negative, got %d", c.Threads)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("config: iterations must be positive, got %d", c.Iterations)
	}
	if c.FoldChunk < 0 {
		return fmt.Errorf("config: fold_chunk must not be negative, got %d", c.FoldChunk)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("config: sample_every must not be negative, got %d", c.SampleEvery)
	}
	return nil
}

// ExecMode parses Mode.
func (c *Config) ExecMode() (galaxy.Mode, error) {
	return galaxy.ParseMode(c.Mode)
}

func (c *Config) GalaxyConfig() galaxy.Config {
	return galaxy.Config{
		Stars:     c.Stars,
		Workers:   c.Threads,
		Seed:      c.Seed,
		FoldChunk: c.FoldChunk,
	}
}
