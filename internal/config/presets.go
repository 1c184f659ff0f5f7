package config

// Presets maps a scene name to named configuration variants, the way
// the teacher's model presets work, keyed by scene name instead of
// model name since pbfsim has exactly two built-in scenes.
var Presets = map[string]map[string]*Config{
	"dam_break": {
		"default": {Scene: 0, Dt: DefaultDt, Duration: 5.0},
		"slow": {Scene: 0, Dt: DefaultDt, Duration: 5.0,
			Tunables: &Tunables{SolverIterations: intPtr(10)}},
		"long": {Scene: 0, Dt: DefaultDt, Duration: 20.0},
	},
	"slide_wall": {
		"default": {Scene: 1, Dt: DefaultDt, Duration: 10.0},
		"stiff": {Scene: 1, Dt: DefaultDt, Duration: 10.0,
			Tunables: &Tunables{Relaxation: float64Ptr(5e3)}},
		"weightless": {Scene: 1, Dt: DefaultDt, Duration: 10.0,
			Tunables: &Tunables{GravityY: float64Ptr(0)}},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}

func intPtr(v int) *int           { return &v }
func float64Ptr(v float64) *float64 { return &v }
