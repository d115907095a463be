// Package config provides YAML-based game configuration loading and
// difficulty presets for the Hanoi game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

// Limits on the configurable disc count.
const (
	MinDiscs = core.MinDiscs
	MaxDiscs = core.MaxDiscs
)

// HanoiConfig contains all configuration for the Tower of Hanoi game.
type HanoiConfig struct {
	Game     HanoiGame     `yaml:"game"`
	Playback HanoiPlayback `yaml:"playback"`
	Display  HanoiDisplay  `yaml:"display"`
}

// HanoiGame defines the starting puzzle.
type HanoiGame struct {
	Discs   int    `yaml:"discs"`
	WinRule string `yaml:"win_rule"` // "destination" or "any_other" ("loose")
	Source  string `yaml:"source"`   // A/B/C in any case, or 1/2/3
	Target  string `yaml:"target"`
}

// HanoiPlayback defines auto-solve pacing.
type HanoiPlayback struct {
	IntervalMS int `yaml:"interval_ms"`
}

// HanoiDisplay defines rendering parameters.
type HanoiDisplay struct {
	DiscColors []string `yaml:"disc_colors"` // smallest disc first
	PegLabels  []string `yaml:"peg_labels"`  // empty means the translated default
}

// Interval returns the playback pacing as a duration.
func (c HanoiConfig) Interval() time.Duration {
	return time.Duration(c.Playback.IntervalMS) * time.Millisecond
}

// Validate reports the first out-of-range value.
func (c HanoiConfig) Validate() error {
	if c.Game.Discs < MinDiscs || c.Game.Discs > MaxDiscs {
		return fmt.Errorf("config: game.discs must be in [%d,%d], got %d", MinDiscs, MaxDiscs, c.Game.Discs)
	}
	if _, err := core.ParseWinRule(c.Game.WinRule); err != nil {
		return fmt.Errorf("config: unknown game.win_rule %q", c.Game.WinRule)
	}
	source, err := core.ParsePeg(c.Game.Source)
	if err != nil {
		return fmt.Errorf("config: game.source: %w", err)
	}
	target, err := core.ParsePeg(c.Game.Target)
	if err != nil {
		return fmt.Errorf("config: game.target: %w", err)
	}
	if source == target {
		return fmt.Errorf("config: game.source and game.target must differ")
	}
	if c.Playback.IntervalMS <= 0 {
		return fmt.Errorf("config: playback.interval_ms must be positive, got %d", c.Playback.IntervalMS)
	}
	if n := len(c.Display.PegLabels); n != 0 && n != 3 {
		return fmt.Errorf("config: display.peg_labels needs 3 entries, got %d", n)
	}
	return nil
}
