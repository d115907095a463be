package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultHanoiConfig returns the default Hanoi configuration.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Game: HanoiGame{
			Discs:   3,
			WinRule: "destination",
			Source:  "A",
			Target:  "C",
		},
		Playback: HanoiPlayback{
			IntervalMS: 400,
		},
		Display: HanoiDisplay{
			DiscColors: []string{"red", "orange", "yellow", "green", "cyan", "blue", "bright_blue", "magenta"},
		},
	}
}
