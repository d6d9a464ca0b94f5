package config

import "sort"

// Presets are named playback and quiz profiles; they apply to any topic.
var Presets = map[string]*Config{
	"tour": {
		Speed: 15, Base: DefaultBase,
	},
	"skim": {
		Speed: 90, Base: DefaultBase,
	},
	"drill": {
		Speed: DefaultSpeed, Base: DefaultBase,
		Quiz: QuizConfig{Shuffle: true, TimeLimitSeconds: 60},
	},
	"exam": {
		Speed: DefaultSpeed, Base: DefaultBase,
		Quiz: QuizConfig{Shuffle: true, TimeLimitSeconds: 300},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
