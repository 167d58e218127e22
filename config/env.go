package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvTickInterval = "NOT_ROGUE_TICK_INTERVAL"
	EnvSpawnEvery   = "NOT_ROGUE_SPAWN_EVERY"
	EnvSeed         = "NOT_ROGUE_SEED"
	EnvObstacles    = "NOT_ROGUE_OBSTACLES"
	EnvAudioEnabled = "NOT_ROGUE_AUDIO_ENABLED"
	EnvAudioVolume  = "NOT_ROGUE_AUDIO_VOLUME"
	EnvLogLevel     = "NOT_ROGUE_LOG_LEVEL"
	EnvLogFormat    = "NOT_ROGUE_LOG_FORMAT"
	EnvDebug        = "NOT_ROGUE_DEBUG"
)

// ApplyEnv overrides fields from NOT_ROGUE_* variables that are set.
// A value that does not parse is an error; range checks are left to Validate
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvTickInterval); ok {
		c.TickInterval = v
	}
	if err := envInt(EnvSpawnEvery, &c.SpawnEvery); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvSeed, v)
		}
		c.Seed = seed
	}
	if err := envInt(EnvObstacles, &c.Obstacles); err != nil {
		return err
	}
	if err := envBool(EnvAudioEnabled, &c.Audio.Enabled); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvAudioVolume); ok {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvAudioVolume, v)
		}
		c.Audio.Volume = vol
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		c.Log.Format = v
	}
	return envBool(EnvDebug, &c.Log.Debug)
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, name, v)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, name, v)
	}
	*dst = b
	return nil
}
