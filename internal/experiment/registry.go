// Package experiment names the built-in scenes and wires a simulator,
// config overrides, and metrics into a runnable unit, grounded on the
// teacher's experiment package but keyed by scene name rather than
// model/integrator/controller factories (PBF has exactly one solver).
package experiment

import "fmt"

// Registry maps human-readable scene names to the pbf.Simulator scene
// IDs used by predefinedScene.
type Registry struct {
	scenes map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		scenes: map[string]int{
			"dam_break":  0,
			"slide_wall": 1,
		},
	}
}

func (r *Registry) SceneID(name string) (int, error) {
	id, ok := r.scenes[name]
	if !ok {
		return 0, fmt.Errorf("unknown scene: %s", name)
	}
	return id, nil
}

func (r *Registry) ListScenes() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	return names
}
