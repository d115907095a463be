package hanoi

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

func TestSnapshotStates(t *testing.T) {
	g := newTestGame(t, New(), 0)
	if s := g.Snapshot().State; s != StateSetup {
		t.Errorf("State = %q, expected %q", s, StateSetup)
	}

	press(g, platformcore.ActionConfirm)
	if s := g.Snapshot().State; s != StatePlaying {
		t.Errorf("State = %q, expected %q", s, StatePlaying)
	}

	press(g, platformcore.ActionSolve)
	snap := g.Snapshot()
	if snap.State != StateAutoSolving {
		t.Errorf("State = %q, expected %q", snap.State, StateAutoSolving)
	}
	if snap.Pending != core.MinMoves(snap.Discs) {
		t.Errorf("Pending = %d, expected %d", snap.Pending, core.MinMoves(snap.Discs))
	}
}

func TestSnapshotYAML(t *testing.T) {
	g := newTestGame(t, New(), 3)
	press(g, platformcore.ActionPeg1, platformcore.ActionPeg3)

	var _ registry.Snapshotter = g

	data, err := g.SnapshotYAML()
	if err != nil {
		t.Fatalf("SnapshotYAML failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"variant: hanoi", "moves: 1", "min_moves: 7", "state: playing", "selected: -1"} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot YAML missing %q:\n%s", want, out)
		}
	}
}
