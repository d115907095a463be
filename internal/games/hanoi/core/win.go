package core

// WinInfo summarizes the win condition and score.
type WinInfo struct {
	Won       bool
	MoveCount int
	MinMoves  int
	Optimal   bool // won in exactly MinMoves
}

// Win evaluates the win predicate without changing the phase.
func (s *State) Win() WinInfo {
	won := s.complete()
	return WinInfo{
		Won:       won,
		MoveCount: s.moves,
		MinMoves:  MinMoves(s.discs),
		Optimal:   won && s.moves == MinMoves(s.discs),
	}
}

// complete reports whether a goal peg holds the whole tower.
func (s *State) complete() bool {
	if s.phase == PhaseNotStarted || s.discs == 0 {
		return false
	}
	if s.rule == WinAnyOther {
		for i := range s.pegs {
			if PegID(i) != s.source && len(s.pegs[i]) == s.discs {
				return true
			}
		}
		return false
	}
	return len(s.pegs[s.target]) == s.discs
}
