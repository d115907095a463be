package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDiscCount is returned when a disc count is outside [MinDiscs, MaxDiscs].
	ErrInvalidDiscCount = errors.New("hanoi: disc count must be between 3 and 8")

	// ErrDiscTooLarge is the rule violation: a disc cannot sit on a smaller one.
	ErrDiscTooLarge = errors.New("hanoi: disc cannot be placed on a smaller disc")

	ErrNoSelection    = errors.New("hanoi: no disc selected")
	ErrEmptySourcePeg = errors.New("hanoi: source peg is empty")
	ErrNotInProgress  = errors.New("hanoi: game is not accepting moves")
	ErrInvalidPeg     = errors.New("hanoi: invalid peg")
)

// RuleViolation describes a rejected manual move.
type RuleViolation struct {
	Disc Disc
	Onto Disc
	From PegID
	To   PegID
}

func (v *RuleViolation) Error() string {
	return fmt.Sprintf("%s: disc %d onto disc %d (%s)", ErrDiscTooLarge, v.Disc, v.Onto, Move{From: v.From, To: v.To})
}

func (v *RuleViolation) Unwrap() error {
	return ErrDiscTooLarge
}
