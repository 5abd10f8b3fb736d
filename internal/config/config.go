package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/loopgen/internal/loop"
)

type Config struct {
	Duration      float64      `yaml:"duration"`
	Frames        int          `yaml:"frames"`
	Radius        float64      `yaml:"radius"`
	Center        CenterConfig `yaml:"center"`
	Phase0        float64      `yaml:"phase0"`
	Loops         int          `yaml:"loops"`
	Inertia       float64      `yaml:"inertia"`
	Stiffness     float64      `yaml:"stiffness"`
	Fluidity      float64      `yaml:"fluidity"`
	Softness      float64      `yaml:"softness"`
	WarmupPeriods float64      `yaml:"warmup_periods"`
}

type CenterConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration:      loop.DefaultDuration,
		Frames:        loop.DefaultFrames,
		Radius:        loop.DefaultRadius,
		Loops:         1,
		Inertia:       loop.DefaultInertia,
		Stiffness:     loop.DefaultStiffness,
		Fluidity:      loop.DefaultFluidity,
		Softness:      loop.DefaultSoftness,
		WarmupPeriods: loop.DefaultWarmup,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Input converts the config into a generation input. Range enforcement is
// left to loop.Resolve.
func (c *Config) Input() loop.Input {
	return loop.Input{
		Duration:      c.Duration,
		FrameCount:    c.Frames,
		Radius:        c.Radius,
		CenterX:       c.Center.X,
		CenterY:       c.Center.Y,
		Phase0:        c.Phase0,
		Loops:         c.Loops,
		Inertia:       c.Inertia,
		Stiffness:     c.Stiffness,
		Fluidity:      c.Fluidity,
		Softness:      c.Softness,
		WarmupPeriods: c.WarmupPeriods,
	}
}
