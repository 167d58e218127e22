// Package config loads the TOML run configuration with environment overrides
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/not-rogue/constants"
)

var (
	ErrUnknownKeys       = errors.New("config: unknown keys")
	ErrInvalidTick       = errors.New("config: tick_interval must be a positive duration")
	ErrInvalidSpawnEvery = errors.New("config: spawn_every must be at least 1")
	ErrInvalidObstacles  = errors.New("config: obstacles must not be negative")
	ErrInvalidVolume     = errors.New("config: audio volume must be within [0, 1]")
	ErrInvalidLogLevel   = errors.New("config: unknown log level")
	ErrInvalidLogFormat  = errors.New("config: log format must be text or json")
	ErrInvalidEnv        = errors.New("config: invalid environment override")
)

// Config is the full run configuration
type Config struct {
	TickInterval string      `toml:"tick_interval" json:"tick_interval" jsonschema:"title=Tick interval,description=Wall-clock time between simulation ticks as a Go duration,default=100ms"`
	SpawnEvery   int         `toml:"spawn_every" json:"spawn_every" jsonschema:"title=Spawn interval,description=Ticks between enemy spawns,minimum=1,default=100"`
	Seed         uint64      `toml:"seed" json:"seed" jsonschema:"title=Seed,description=RNG seed used until the first restart,default=3"`
	Obstacles    int         `toml:"obstacles" json:"obstacles" jsonschema:"title=Obstacles,description=Random wall cells scattered at startup,minimum=0,default=0"`
	Audio        AudioConfig `toml:"audio" json:"audio" jsonschema:"title=Audio"`
	Log          LogConfig   `toml:"log" json:"log" jsonschema:"title=Logging"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled bool    `toml:"enabled" json:"enabled" jsonschema:"default=true"`
	Volume  float64 `toml:"volume" json:"volume" jsonschema:"minimum=0,maximum=1,default=0.5"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Level  string `toml:"level" json:"level" jsonschema:"enum=panic,enum=fatal,enum=error,enum=warn,enum=warning,enum=info,enum=debug,enum=trace,default=info"`
	Format string `toml:"format" json:"format" jsonschema:"enum=text,enum=json,default=text"`
	Debug  bool   `toml:"debug" json:"debug" jsonschema:"description=Write logs to the log directory instead of discarding them"`
	Dir    string `toml:"dir" json:"dir" jsonschema:"default=logs"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TickInterval: constants.TickInterval.String(),
		SpawnEvery:   constants.NewEnemyFreq,
		Seed:         constants.InitialSeed,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Dir:    "logs",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys the file sets that Config does not know are an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks every field
func (c *Config) Validate() error {
	if d, err := time.ParseDuration(c.TickInterval); err != nil || d <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidTick, c.TickInterval)
	}
	if c.SpawnEvery < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSpawnEvery, c.SpawnEvery)
	}
	if c.Obstacles < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidObstacles, c.Obstacles)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}

// Tick returns the parsed tick interval, the default if it does not parse
func (c *Config) Tick() time.Duration {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil || d <= 0 {
		return constants.TickInterval
	}
	return d
}

// LogrusLevel returns the parsed log level, info if it does not parse
func (c LogConfig) LogrusLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
