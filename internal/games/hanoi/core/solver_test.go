package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

func TestMinMoves(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{3, 7},
		{5, 31},
		{8, 255},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, core.MinMoves(tc.n), "MinMoves(%d)", tc.n)
	}
}

func TestSpare(t *testing.T) {
	require.Equal(t, core.PegB, core.Spare(core.PegA, core.PegC))
	require.Equal(t, core.PegA, core.Spare(core.PegB, core.PegC))
	require.Equal(t, core.PegC, core.Spare(core.PegB, core.PegA))
}

func TestSolveZeroDiscs(t *testing.T) {
	require.Empty(t, core.Solve(0, core.PegA, core.PegC, core.PegB))
}

func TestSolveThreeDiscsOrder(t *testing.T) {
	a, b, c := core.PegA, core.PegB, core.PegC
	want := []core.Move{
		{From: a, To: c}, {From: a, To: b}, {From: c, To: b}, {From: a, To: c},
		{From: b, To: a}, {From: b, To: c}, {From: a, To: c},
	}
	require.Equal(t, want, core.Solve(3, a, c, b))
}

func TestSolveLengthAndReplay(t *testing.T) {
	for n := core.MinDiscs; n <= core.MaxDiscs; n++ {
		moves := core.Solve(n, core.PegA, core.PegC, core.PegB)
		require.Len(t, moves, core.MinMoves(n), "n=%d", n)

		s := core.New()
		require.NoError(t, s.Initialize(n))
		for i, m := range moves {
			require.NoError(t, s.ApplyMove(m.From, m.To), "n=%d move %d", n, i)
			require.NoError(t, s.Validate(), "n=%d after move %d (%s)", n, i, m)
		}

		require.Empty(t, s.Peg(core.PegA))
		require.Empty(t, s.Peg(core.PegB))
		require.Len(t, s.Peg(core.PegC), n)
		require.Equal(t, core.PhaseWon, s.Phase())
		require.True(t, s.Win().Optimal)
	}
}

func TestSequenceMatchesSolve(t *testing.T) {
	var got []core.Move
	for m := range core.Sequence(5, core.PegB, core.PegA, core.PegC) {
		got = append(got, m)
	}
	require.Equal(t, core.Solve(5, core.PegB, core.PegA, core.PegC), got)
}

func TestSequenceStopsEarly(t *testing.T) {
	count := 0
	for range core.Sequence(8, core.PegA, core.PegC, core.PegB) {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)
}
