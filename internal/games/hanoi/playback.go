package hanoi

import (
	"context"
	"time"

	"github.com/zyedidia/generic/queue"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

// Playback replays a solver move list onto a State, one move at a time.
//
// A playback is bound to the state's generation at Start. Any Initialize,
// Reset or new auto-solve bumps the generation, and the playback then drains
// without touching the board again.
type Playback struct {
	moves   *queue.Queue[core.Move]
	token   uint64
	active  bool
	total   int
	applied int

	// Tick pacing for the fixed-step platform loop.
	intervalTicks int
	ticks         int
}

// NewPlayback creates an idle playback that advances once every
// intervalTicks calls to Tick.
func NewPlayback(intervalTicks int) *Playback {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	return &Playback{
		moves:         queue.New[core.Move](),
		intervalTicks: intervalTicks,
	}
}

// IntervalTicks converts a pacing interval to a tick count at tickRate.
func IntervalTicks(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int(interval * time.Duration(tickRate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// Start queues moves against the state's current generation, replacing any
// playback in progress.
func (p *Playback) Start(s *core.State, moves []core.Move) {
	p.Cancel()
	for _, m := range moves {
		p.moves.Enqueue(m)
	}
	p.token = s.Generation()
	p.total = len(moves)
	p.applied = 0
	p.ticks = 0
	p.active = true
}

// Cancel drops all pending moves.
func (p *Playback) Cancel() {
	for !p.moves.Empty() {
		p.moves.Dequeue()
	}
	p.active = false
}

// Active reports whether moves are still pending.
func (p *Playback) Active() bool { return p.active }

// Applied returns how many moves have been applied so far.
func (p *Playback) Applied() int { return p.applied }

// Total returns the length of the move list given to Start.
func (p *Playback) Total() int { return p.total }

// Remaining returns the number of moves not yet applied.
func (p *Playback) Remaining() int {
	if !p.active {
		return 0
	}
	return p.total - p.applied
}

// Stale reports whether the state has moved on since Start.
func (p *Playback) Stale(s *core.State) bool {
	return s.Generation() != p.token
}

// Tick counts one platform tick and advances when the interval elapses.
func (p *Playback) Tick(s *core.State) (core.Move, bool) {
	if !p.active {
		return core.Move{}, false
	}
	if p.Stale(s) {
		p.Cancel()
		return core.Move{}, false
	}
	p.ticks++
	if p.ticks < p.intervalTicks {
		return core.Move{}, false
	}
	p.ticks = 0
	return p.Advance(s)
}

// Advance applies the next move. It returns false when nothing was applied,
// either because the queue is empty or because the playback went stale.
// Once the last move lands the state's win check runs.
func (p *Playback) Advance(s *core.State) (core.Move, bool) {
	if !p.active {
		return core.Move{}, false
	}
	if p.Stale(s) || s.Phase() != core.PhaseAutoSolving {
		p.Cancel()
		return core.Move{}, false
	}
	if p.moves.Empty() {
		p.active = false
		s.FinishAutoSolve()
		return core.Move{}, false
	}

	m := p.moves.Dequeue()
	if err := s.ApplyMove(m.From, m.To); err != nil {
		// The solver list no longer matches the board.
		p.Cancel()
		s.FinishAutoSolve()
		return core.Move{}, false
	}
	p.applied++
	if p.moves.Empty() {
		p.active = false
		s.FinishAutoSolve()
	}
	return m, true
}

// Run drives the playback from a wall-clock ticker until it drains or ctx is
// done. onStep, if set, is called after every applied move. It is meant for
// callers outside the fixed-step loop, such as the solve command.
func (p *Playback) Run(ctx context.Context, s *core.State, interval time.Duration, onStep func(core.Move)) error {
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for p.active {
		select {
		case <-ctx.Done():
			p.Cancel()
			return ctx.Err()
		case <-ticker.C:
			if m, ok := p.Advance(s); ok && onStep != nil {
				onStep(m)
			}
		}
	}
	return nil
}
