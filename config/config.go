package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gorustyt/mftlevel/codec"
	"github.com/gorustyt/mftlevel/level"
)

type Config struct {
	Level LevelConfig `toml:"level"`
	Log   LogConfig   `toml:"log"`
}

type LevelConfig struct {
	// Codec is a registered codec name, "mfi" or "tiff".
	Codec string `toml:"codec"`
	// Channels lists the image kinds each view loads. Empty loads metadata only.
	Channels []string `toml:"channels"`
	// Workers bounds parallel view loading; 0 uses every CPU.
	Workers int `toml:"workers"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
	// File enables rotation through lumberjack; empty logs to stderr.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

func Default() *Config {
	channels := make([]string, 0, 4)
	for _, k := range level.AllKinds() {
		channels = append(channels, k.String())
	}
	return &Config{
		Level: LevelConfig{
			Codec:    codec.Float{}.Name(),
			Channels: channels,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a TOML file over Default. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := codec.ByName(c.Level.Codec); err != nil {
		return fmt.Errorf("config: level.codec: %w", err)
	}
	if _, err := c.kinds(); err != nil {
		return fmt.Errorf("config: level.channels: %w", err)
	}
	if c.Level.Workers < 0 {
		return fmt.Errorf("config: level.workers must not be negative, got %d", c.Level.Workers)
	}
	return nil
}

func (c *Config) kinds() ([]level.ImageKind, error) {
	kinds := make([]level.ImageKind, 0, len(c.Level.Channels))
	for _, name := range c.Level.Channels {
		k, err := level.ParseImageKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// LevelOptions converts the level section. The logger and allocator are left
// for the caller.
func (c *Config) LevelOptions() (level.Options, error) {
	cd, err := codec.ByName(c.Level.Codec)
	if err != nil {
		return level.Options{}, err
	}
	kinds, err := c.kinds()
	if err != nil {
		return level.Options{}, err
	}
	return level.Options{Codec: cd, Kinds: kinds, Workers: c.Level.Workers}, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
