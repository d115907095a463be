// Package core contains the pure Tower of Hanoi state machine and solver.
// It has no presentation dependencies so it can be driven by any front end.
package core

import (
	"fmt"
	"strings"
)

// Disc count bounds for a game.
const (
	MinDiscs = 3
	MaxDiscs = 8
	PegCount = 3
)

// Disc is identified by its size; 1 is the smallest.
type Disc int

// PegID identifies one of the three pegs.
type PegID int

const (
	PegA PegID = iota
	PegB
	PegC
)

// Valid reports whether the peg index is in range.
func (p PegID) Valid() bool {
	return p >= PegA && p <= PegC
}

// String returns the peg label (A, B or C).
func (p PegID) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Peg(%d)", int(p))
	}
	return string(rune('A' + int(p)))
}

// ParsePeg accepts a label (A/B/C, any case) or a 1-based number (1/2/3).
func ParsePeg(s string) (PegID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "1":
		return PegA, nil
	case "B", "2":
		return PegB, nil
	case "C", "3":
		return PegC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPeg, s)
}

// Move transfers the top disc of From onto To.
type Move struct {
	From PegID
	To   PegID
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseAutoSolving
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAutoSolving:
		return "auto_solving"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// WinRule selects which pegs count as a finished tower.
type WinRule int

const (
	// WinDestination only accepts the designated target peg.
	WinDestination WinRule = iota
	// WinAnyOther accepts either peg that is not the source.
	WinAnyOther
)

// ParseWinRule maps config strings to a rule.
func ParseWinRule(s string) (WinRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "destination":
		return WinDestination, nil
	case "any_other", "any-other", "loose":
		return WinAnyOther, nil
	}
	return WinDestination, fmt.Errorf("hanoi: unknown win rule %q", s)
}

func (r WinRule) String() string {
	if r == WinAnyOther {
		return "any_other"
	}
	return "destination"
}
