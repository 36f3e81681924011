package config

import "sort"

var presets = map[string]*Config{
	"demo": {
		Algorithm: "bubble-sort",
		Speed:     7,
		Mode:      "continuous",
		Size:      20,
		Kind:      "random",
	},
	"classroom": {
		Algorithm: "insertion-sort",
		Speed:     3,
		Mode:      "step",
		Size:      12,
		Kind:      "random",
	},
	"race": {
		Algorithm: "heap-sort",
		Speed:     9,
		Mode:      "continuous",
		Size:      80,
		Kind:      "random",
	},
	"divide": {
		Algorithm: "merge-sort",
		Speed:     8,
		Mode:      "continuous",
		Size:      40,
		Kind:      "random",
	},
	"pivot": {
		Algorithm: "quick-sort",
		Speed:     8,
		Mode:      "continuous",
		Size:      40,
		Kind:      "few-unique",
	},
	"stress": {
		Algorithm: "quick-sort",
		Speed:     10,
		Mode:      "continuous",
		Size:      200,
		Kind:      "random",
	},
	"worst-case": {
		Algorithm: "bubble-sort",
		Speed:     9,
		Mode:      "continuous",
		Size:      50,
		Kind:      "reversed",
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Values = append([]int(nil), p.Values...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
