package core

import (
	"errors"
	"fmt"
)

// Options configures a State. The zero value is not valid; use DefaultOptions.
type Options struct {
	Source PegID
	Target PegID
	Rule   WinRule
	Discs  int // disc count used until Initialize picks another
}

// DefaultOptions moves the tower from A to C and only accepts C as the goal.
func DefaultOptions() Options {
	return Options{
		Source: PegA,
		Target: PegC,
		Rule:   WinDestination,
		Discs:  MinDiscs,
	}
}

// State is the complete puzzle state. It is not safe for concurrent use; a
// single owner drives every transition.
type State struct {
	pegs       [PegCount][]Disc
	discs      int
	moves      int
	selected   PegID
	hasSel     bool
	phase      Phase
	generation uint64

	source PegID
	target PegID
	rule   WinRule
}

// MoveResult reports the outcome of AttemptMove.
type MoveResult struct {
	Accepted   bool
	Deselected bool  // target was the selection's own peg
	Move       Move  // the attempted move, when a disc was selected
	Reason     error // set when the move was not accepted and not a deselect
	Win        WinInfo
}

// New returns a NotStarted state with DefaultOptions.
func New() *State {
	s, _ := NewWithOptions(DefaultOptions())
	return s
}

// NewWithOptions returns a NotStarted state for the given pegs and rule.
func NewWithOptions(opts Options) (*State, error) {
	if !opts.Source.Valid() || !opts.Target.Valid() {
		return nil, fmt.Errorf("%w: source %d, target %d", ErrInvalidPeg, opts.Source, opts.Target)
	}
	if opts.Source == opts.Target {
		return nil, fmt.Errorf("%w: source and target are both %s", ErrInvalidPeg, opts.Source)
	}
	discs := opts.Discs
	if discs == 0 {
		discs = MinDiscs
	}
	if discs < MinDiscs || discs > MaxDiscs {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscCount, discs)
	}
	return &State{
		discs:  discs,
		phase:  PhaseNotStarted,
		source: opts.Source,
		target: opts.Target,
		rule:   opts.Rule,
	}, nil
}

// Initialize clears the board and stacks n discs on the source peg, largest
// at the bottom. It replaces any prior state regardless of phase. An invalid
// n leaves the state untouched.
func (s *State) Initialize(n int) error {
	if n < MinDiscs || n > MaxDiscs {
		return fmt.Errorf("%w: got %d", ErrInvalidDiscCount, n)
	}
	for i := range s.pegs {
		s.pegs[i] = make([]Disc, 0, n)
	}
	for size := n; size >= 1; size-- {
		s.pegs[s.source] = append(s.pegs[s.source], Disc(size))
	}
	s.discs = n
	s.moves = 0
	s.hasSel = false
	s.phase = PhaseInProgress
	s.generation++
	return nil
}

// Reset empties the board and returns to NotStarted. The disc count is kept.
func (s *State) Reset() {
	for i := range s.pegs {
		s.pegs[i] = nil
	}
	s.moves = 0
	s.hasSel = false
	s.phase = PhaseNotStarted
	s.generation++
}

// SetDiscCount changes the disc count used by the next game. Only allowed
// before the game starts.
func (s *State) SetDiscCount(n int) error {
	if s.phase != PhaseNotStarted {
		return ErrNotInProgress
	}
	if n < MinDiscs || n > MaxDiscs {
		return fmt.Errorf("%w: got %d", ErrInvalidDiscCount, n)
	}
	s.discs = n
	return nil
}

// SelectDisc picks up the top disc of peg. Selecting an empty peg, or
// selecting while a disc is already held, is a no-op.
func (s *State) SelectDisc(peg PegID) error {
	if !peg.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPeg, peg)
	}
	if s.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if s.hasSel || len(s.pegs[peg]) == 0 {
		return nil
	}
	s.selected = peg
	s.hasSel = true
	return nil
}

// Deselect drops the current selection, if any.
func (s *State) Deselect() {
	s.hasSel = false
}

// AttemptMove moves the selected disc onto target. Targeting the selection's
// own peg deselects. An illegal move clears the selection and reports a
// *RuleViolation.
func (s *State) AttemptMove(target PegID) MoveResult {
	if !target.Valid() {
		return MoveResult{Reason: fmt.Errorf("%w: %d", ErrInvalidPeg, target)}
	}
	if s.phase != PhaseInProgress {
		return MoveResult{Reason: ErrNotInProgress}
	}
	if !s.hasSel {
		return MoveResult{Reason: ErrNoSelection}
	}

	from := s.selected
	move := Move{From: from, To: target}
	if from == target {
		s.hasSel = false
		return MoveResult{Deselected: true, Move: move}
	}

	disc := s.top(from)
	if onto, ok := s.Top(target); ok && onto < disc {
		s.hasSel = false
		return MoveResult{
			Move:   move,
			Reason: &RuleViolation{Disc: disc, Onto: onto, From: from, To: target},
		}
	}

	s.transfer(from, target)
	s.hasSel = false
	return MoveResult{Accepted: true, Move: move, Win: s.CheckWin()}
}

// ApplyMove performs a solver move, bypassing the selection. The solver is
// trusted: a move that would break the ordering invariant panics. Outside
// auto-solve the win check runs immediately; during auto-solve it waits for
// FinishAutoSolve.
func (s *State) ApplyMove(from, to PegID) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPeg, Move{From: from, To: to})
	}
	if s.phase != PhaseInProgress && s.phase != PhaseAutoSolving {
		return ErrNotInProgress
	}
	if len(s.pegs[from]) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySourcePeg, from)
	}
	if from == to {
		panic(fmt.Sprintf("hanoi: solver emitted a move onto its own peg %s", from))
	}
	disc := s.top(from)
	if onto, ok := s.Top(to); ok && onto < disc {
		panic(fmt.Sprintf("hanoi: illegal solver move %s: disc %d onto disc %d", Move{From: from, To: to}, disc, onto))
	}

	s.transfer(from, to)
	s.hasSel = false
	if s.phase == PhaseInProgress {
		s.CheckWin()
	}
	return nil
}

// StartAutoSolve puts the tower back on the source peg, enters AutoSolving
// and returns the moves the playback must apply in order.
func (s *State) StartAutoSolve() ([]Move, error) {
	if s.phase != PhaseInProgress && s.phase != PhaseWon {
		return nil, ErrNotInProgress
	}
	if err := s.Initialize(s.discs); err != nil {
		return nil, err
	}
	s.phase = PhaseAutoSolving
	return Solve(s.discs, s.source, s.target, Spare(s.source, s.target)), nil
}

// FinishAutoSolve runs the win check once playback has drained. If the board
// is somehow not solved, manual play resumes.
func (s *State) FinishAutoSolve() WinInfo {
	info := s.CheckWin()
	if !info.Won && s.phase == PhaseAutoSolving {
		s.phase = PhaseInProgress
	}
	return info
}

// CheckWin evaluates the win predicate and moves to Won when it first holds.
func (s *State) CheckWin() WinInfo {
	info := s.Win()
	if info.Won && s.phase != PhaseWon {
		s.phase = PhaseWon
		s.hasSel = false
	}
	return info
}

// Validate checks every structural invariant.
func (s *State) Validate() error {
	if s.hasSel {
		if !s.selected.Valid() || len(s.pegs[s.selected]) == 0 {
			return errors.New("hanoi: selection does not point at a disc")
		}
	}
	if s.phase == PhaseNotStarted {
		for i, p := range s.pegs {
			if len(p) != 0 {
				return fmt.Errorf("hanoi: peg %s holds discs before start", PegID(i))
			}
		}
		return nil
	}

	seen := make(map[Disc]bool, s.discs)
	total := 0
	for i, p := range s.pegs {
		for j, d := range p {
			if d < 1 || int(d) > s.discs {
				return fmt.Errorf("hanoi: peg %s holds unknown disc %d", PegID(i), d)
			}
			if seen[d] {
				return fmt.Errorf("hanoi: disc %d appears twice", d)
			}
			seen[d] = true
			if j > 0 && p[j-1] <= d {
				return fmt.Errorf("hanoi: peg %s has disc %d above disc %d", PegID(i), d, p[j-1])
			}
		}
		total += len(p)
	}
	if total != s.discs {
		return fmt.Errorf("hanoi: %d discs on the board, expected %d", total, s.discs)
	}
	return nil
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	for i, p := range s.pegs {
		if p != nil {
			c.pegs[i] = append([]Disc(nil), p...)
		}
	}
	return &c
}

// Pegs returns copies of all pegs, bottom to top.
func (s *State) Pegs() [PegCount][]Disc {
	var out [PegCount][]Disc
	for i := range s.pegs {
		out[i] = s.Peg(PegID(i))
	}
	return out
}

// Peg returns a copy of one peg, bottom to top.
func (s *State) Peg(id PegID) []Disc {
	if !id.Valid() {
		return nil
	}
	return append([]Disc(nil), s.pegs[id]...)
}

// Height returns how many discs are on a peg.
func (s *State) Height(id PegID) int {
	if !id.Valid() {
		return 0
	}
	return len(s.pegs[id])
}

// Top returns the movable disc of a peg.
func (s *State) Top(id PegID) (Disc, bool) {
	if !id.Valid() || len(s.pegs[id]) == 0 {
		return 0, false
	}
	return s.top(id), true
}

// Selection returns the held disc and the peg it sits on.
func (s *State) Selection() (PegID, Disc, bool) {
	if !s.hasSel {
		return 0, 0, false
	}
	return s.selected, s.top(s.selected), true
}

func (s *State) MoveCount() int     { return s.moves }
func (s *State) DiscCount() int     { return s.discs }
func (s *State) MinMoves() int      { return MinMoves(s.discs) }
func (s *State) Phase() Phase       { return s.phase }
func (s *State) Source() PegID      { return s.source }
func (s *State) Target() PegID      { return s.target }
func (s *State) Rule() WinRule      { return s.rule }
func (s *State) Generation() uint64 { return s.generation }

func (s *State) top(id PegID) Disc {
	p := s.pegs[id]
	return p[len(p)-1]
}

func (s *State) transfer(from, to PegID) {
	src := s.pegs[from]
	disc := src[len(src)-1]
	s.pegs[from] = src[:len(src)-1]
	s.pegs[to] = append(s.pegs[to], disc)
	s.moves++
}
