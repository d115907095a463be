package core

import "iter"

// MinMoves returns 2^n - 1, the length of an optimal solution.
func MinMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}

// Spare returns the peg that is neither a nor b.
func Spare(a, b PegID) PegID {
	return PegID(PegCount*(PegCount-1)/2) - a - b
}

// Solve returns the optimal move sequence for moving n discs from source to
// destination, using auxiliary as the spare peg.
func Solve(n int, source, destination, auxiliary PegID) []Move {
	moves := make([]Move, 0, MinMoves(n))
	for m := range Sequence(n, source, destination, auxiliary) {
		moves = append(moves, m)
	}
	return moves
}

// Sequence yields the same moves as Solve without materializing them.
func Sequence(n int, source, destination, auxiliary PegID) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		solve(n, source, destination, auxiliary, yield)
	}
}

// solve returns false once the consumer stops iterating.
func solve(n int, src, dst, aux PegID, yield func(Move) bool) bool {
	if n <= 0 {
		return true
	}
	if !solve(n-1, src, aux, dst, yield) {
		return false
	}
	if !yield(Move{From: src, To: dst}) {
		return false
	}
	return solve(n-1, aux, dst, src, yield)
}
