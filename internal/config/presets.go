package config

var Presets = map[string]*Config{
	"default": {
		Stars: DefaultStars, Mode: "parallel", Iterations: DefaultIterations,
		FPS: DefaultFPS, SampleEvery: DefaultSampleEvery,
	},
	"small": {
		Stars: 200, Mode: "single", Iterations: 2000,
		FPS: 60, SampleEvery: 20,
	},
	"pair": {
		Stars: 2, Mode: "single", Iterations: 5000, Seed: 1,
		FPS: 60, SampleEvery: 1,
	},
	"benchmark": {
		Stars: 5000, Mode: "parallel", Iterations: 100, Seed: 42,
		FPS: DefaultFPS, SampleEvery: 0,
	},
	"dense": {
		Stars: 3000, Mode: "parallel", Iterations: 500, FoldChunk: 128,
		FPS: 20, SampleEvery: 100,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
