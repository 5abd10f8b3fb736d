package config

import "sort"

var Presets = map[string]*Config{
	"steady": {
		Duration: 2.0, Frames: 60, Radius: 100, Loops: 1,
		Inertia: 1.0, Stiffness: 40.0, Fluidity: 1.0, Softness: 0.0,
		WarmupPeriods: 6,
	},
	"bouncy": {
		Duration: 2.0, Frames: 60, Radius: 100, Loops: 1,
		Inertia: 1.0, Stiffness: 20.0, Fluidity: 0.15, Softness: 0.3,
		WarmupPeriods: 8,
	},
	"syrup": {
		Duration: 3.0, Frames: 90, Radius: 100, Loops: 1,
		Inertia: 2.0, Stiffness: 8.0, Fluidity: 0.95, Softness: 0.1,
		WarmupPeriods: 6,
	},
	"heavy": {
		Duration: 2.5, Frames: 75, Radius: 120, Loops: 1,
		Inertia: 5.0, Stiffness: 30.0, Fluidity: 0.6, Softness: 0.25,
		WarmupPeriods: 8,
	},
	"double": {
		Duration: 2.0, Frames: 120, Radius: 100, Loops: 2,
		Inertia: 1.0, Stiffness: 25.0, Fluidity: 0.5, Softness: 0.2,
		WarmupPeriods: 6,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
