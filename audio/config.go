package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundPaddle:   0.8,
			SoundWall:     0.5,
			SoundGameOver: 1.0,
		},
	}
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("VI_PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("VI_PONG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Effect volumes as JSON: {"paddle":0.8,"wall":0.5,"gameover":1}
	if effectVols := os.Getenv("VI_PONG_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["paddle"]; ok {
				cfg.EffectVolumes[SoundPaddle] = v
			}
			if v, ok := volumes["wall"]; ok {
				cfg.EffectVolumes[SoundWall] = v
			}
			if v, ok := volumes["gameover"]; ok {
				cfg.EffectVolumes[SoundGameOver] = v
			}
		}
	}

	if sampleRate := os.Getenv("VI_PONG_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
