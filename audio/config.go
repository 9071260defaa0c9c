package audio

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Config controls the sound manager
type Config struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// DefaultConfig returns audio on at half master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   48000,
		Volumes: map[string]float64{
			SoundEat.String():    1.0,
			SoundCrash.String():  0.8,
			SoundSelect.String(): 0.5,
			SoundKey.String():    0.2,
		},
	}
}

// Validate checks ranges and volume keys
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume %v outside 0-1", c.MasterVolume)
	}
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return fmt.Errorf("audio.sample_rate %d outside 8000-192000", c.SampleRate)
	}
	for name, v := range c.Volumes {
		if _, ok := ParseSoundType(name); !ok {
			return fmt.Errorf("audio.volumes: %w %q", ErrUnknownSound, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.volumes.%s %v outside 0-1", name, v)
		}
	}
	return nil
}

// Volume returns the effective volume of s, master included
func (c Config) Volume(s SoundType) float64 {
	v, ok := c.Volumes[s.String()]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// ApplyEnv overrides fields from prefixed environment variables
// <prefix>AUDIO_ENABLED bool, <prefix>MASTER_VOLUME 0-100, <prefix>SFX_VOLUMES JSON object, <prefix>SAMPLE_RATE
// Unparseable values are ignored
func (c *Config) ApplyEnv(prefix string, lookup func(string) (string, bool)) {
	if v, ok := lookup(prefix + "AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}

	if v, ok := lookup(prefix + "MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}

	if v, ok := lookup(prefix + "SFX_VOLUMES"); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Volumes == nil {
				c.Volumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				if _, known := ParseSoundType(name); known {
					c.Volumes[name] = vol
				}
			}
		}
	}

	if v, ok := lookup(prefix + "SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SampleRate = n
		}
	}
}
