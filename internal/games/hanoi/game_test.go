package hanoi

import (
	"reflect"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

// 400ms at 60 ticks per second
const ticksPerMove = 24

func testConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Lang:     "en",
	}
}

// newTestGame returns a game reset with n discs already in play, or on the
// pre-game board when n is 0.
func newTestGame(t *testing.T, g *Game, n int) *Game {
	t.Helper()
	SetStartDiscs(n)
	t.Cleanup(func() { SetStartDiscs(0) })
	g.Reset(testConfig())
	return g
}

func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func idle(g *Game, ticks int) platformcore.StepResult {
	var res platformcore.StepResult
	for range ticks {
		res = press(g)
	}
	return res
}

// play performs each move as a pick and a drop on the direct peg keys.
func play(g *Game, moves []core.Move) platformcore.StepResult {
	var res platformcore.StepResult
	for _, m := range moves {
		press(g, platformcore.PegActions[m.From])
		res = press(g, platformcore.PegActions[m.To])
	}
	return res
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, New(), 0)

	snap := g.Snapshot()
	if snap.State != StateSetup {
		t.Errorf("State = %s, expected %s", snap.State, StateSetup)
	}
	if snap.Discs != 3 {
		t.Errorf("Discs = %d, expected 3", snap.Discs)
	}
	if snap.Moves != 0 || snap.MinMoves != 7 {
		t.Errorf("Moves/MinMoves = %d/%d, expected 0/7", snap.Moves, snap.MinMoves)
	}
	for i, peg := range snap.Pegs {
		if len(peg) != 0 {
			t.Errorf("peg %d = %v, expected empty before start", i, peg)
		}
	}
}

func TestGameStartDiscs(t *testing.T) {
	g := newTestGame(t, New(), 5)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("State = %s, expected %s", snap.State, StatePlaying)
	}
	want := []core.Disc{5, 4, 3, 2, 1}
	if !reflect.DeepEqual(snap.Pegs[core.PegA], want) {
		t.Errorf("peg A = %v, expected %v", snap.Pegs[core.PegA], want)
	}
	if snap.MinMoves != 31 {
		t.Errorf("MinMoves = %d, expected 31", snap.MinMoves)
	}
}

func TestSetupAdjustDiscs(t *testing.T) {
	g := newTestGame(t, New(), 0)

	press(g, platformcore.ActionFewerDiscs)
	if got := g.State().Discs; got != 3 {
		t.Errorf("Discs after decrement at minimum = %d, expected 3", got)
	}

	for range 10 {
		press(g, platformcore.ActionMoreDiscs)
	}
	st := g.State()
	if st.Discs != 8 {
		t.Errorf("Discs after many increments = %d, expected 8", st.Discs)
	}
	if st.MinMoves != 255 {
		t.Errorf("MinMoves = %d, expected 255", st.MinMoves)
	}

	press(g, platformcore.ActionFewerDiscs)
	press(g, platformcore.ActionConfirm)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if len(snap.Pegs[core.PegA]) != 7 {
		t.Errorf("peg A height = %d, expected 7", len(snap.Pegs[core.PegA]))
	}

	// disc count is fixed once the game runs
	press(g, platformcore.ActionMoreDiscs)
	if got := g.State().Discs; got != 7 {
		t.Errorf("Discs changed mid-game to %d", got)
	}
}

func TestManualOptimalWin(t *testing.T) {
	g := newTestGame(t, New(), 3)

	res := play(g, core.Solve(3, core.PegA, core.PegC, core.PegB))

	if !res.State.Won {
		t.Fatal("game should be won after the optimal sequence")
	}
	if res.State.Moves != 7 || !res.State.Optimal {
		t.Errorf("Moves = %d, Optimal = %v, expected 7, true", res.State.Moves, res.State.Optimal)
	}
	if res.State.AutoSolved {
		t.Error("manual win reported as auto-solved")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StateWin)
	}
}

func TestManualSuboptimalWin(t *testing.T) {
	g := newTestGame(t, New(), 3)

	// bounce the small disc before solving
	play(g, []core.Move{{From: core.PegA, To: core.PegB}, {From: core.PegB, To: core.PegA}})
	res := play(g, core.Solve(3, core.PegA, core.PegC, core.PegB))

	if !res.State.Won {
		t.Fatal("game should be won")
	}
	if res.State.Moves != 9 || res.State.Optimal {
		t.Errorf("Moves = %d, Optimal = %v, expected 9, false", res.State.Moves, res.State.Optimal)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "The minimum is 7 moves") {
		t.Error("win overlay should show the minimum move count")
	}
}

func TestRuleViolation(t *testing.T) {
	g := newTestGame(t, New(), 3)

	play(g, []core.Move{{From: core.PegA, To: core.PegB}})
	// disc 2 onto disc 1
	press(g, platformcore.ActionPeg1)
	res := press(g, platformcore.ActionPeg2)

	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1 after a rejected move", res.State.Moves)
	}
	snap := g.Snapshot()
	if snap.Selected != -1 {
		t.Errorf("Selected = %d, expected selection cleared", snap.Selected)
	}
	if !reflect.DeepEqual(snap.Pegs[core.PegA], []core.Disc{3, 2}) {
		t.Errorf("peg A = %v, expected [3 2]", snap.Pegs[core.PegA])
	}
	if g.message != g.tr.Get("RULE_VIOLATION") {
		t.Errorf("message = %q, expected rule violation notice", g.message)
	}

	idle(g, messageSeconds*60)
	if g.message != "" {
		t.Errorf("message = %q, expected it to expire", g.message)
	}
}

func TestSelectSamePegDeselects(t *testing.T) {
	g := newTestGame(t, New(), 3)

	press(g, platformcore.ActionPeg1)
	if g.Snapshot().Selected != int(core.PegA) {
		t.Fatal("peg A should be held")
	}
	res := press(g, platformcore.ActionPeg1)
	if g.Snapshot().Selected != -1 {
		t.Error("selecting the held peg again should deselect")
	}
	if res.State.Moves != 0 {
		t.Errorf("Moves = %d, expected 0", res.State.Moves)
	}
}

func TestEmptyPegSelectIsNoop(t *testing.T) {
	g := newTestGame(t, New(), 3)

	press(g, platformcore.ActionPeg2)
	if g.Snapshot().Selected != -1 {
		t.Error("selecting an empty peg should hold nothing")
	}
}

func TestPickAndDropInOneTick(t *testing.T) {
	g := newTestGame(t, New(), 3)

	res := press(g, platformcore.ActionPeg1, platformcore.ActionPeg3)
	if res.State.Moves != 1 {
		t.Fatalf("Moves = %d, expected 1 when both keys land in one tick", res.State.Moves)
	}
	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Pegs[core.PegC], []core.Disc{1}) {
		t.Errorf("peg C = %v, expected [1]", snap.Pegs[core.PegC])
	}
	if snap.Cursor != core.PegC {
		t.Errorf("Cursor = %v, expected last pressed peg", snap.Cursor)
	}

	// Typed order decides which peg is picked.
	g = newTestGame(t, New(), 3)
	res = press(g, platformcore.ActionPeg3, platformcore.ActionPeg1)
	if res.State.Moves != 0 {
		t.Errorf("Moves = %d, expected 0", res.State.Moves)
	}
	if g.Snapshot().Selected != int(core.PegA) {
		t.Errorf("Selected = %d, expected peg A held", g.Snapshot().Selected)
	}
}

func TestOneTickSolvesLastMove(t *testing.T) {
	g := newTestGame(t, New(), 3)
	moves := core.Solve(3, core.PegA, core.PegC, core.PegB)
	play(g, moves[:len(moves)-1])

	// The drop wins; the extra key after it is ignored.
	last := moves[len(moves)-1]
	res := press(g, platformcore.PegActions[last.From], platformcore.PegActions[last.To], platformcore.ActionPeg2)
	if !res.State.Won {
		t.Fatal("game should be won")
	}
	if res.State.Moves != 7 {
		t.Errorf("Moves = %d, expected 7", res.State.Moves)
	}
	if g.Snapshot().Selected != -1 {
		t.Error("keys after the winning drop should not pick a disc")
	}
}

func TestBackDropsHeldDisc(t *testing.T) {
	g := newTestGame(t, New(), 3)

	press(g, platformcore.ActionPeg1)
	res := press(g, platformcore.ActionBack)
	if g.Snapshot().Selected != -1 {
		t.Error("back should drop the held disc")
	}
	if res.State.Moves != 0 {
		t.Errorf("Moves = %d, expected 0", res.State.Moves)
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, New(), 3)

	if g.cursor != core.PegA {
		t.Fatalf("cursor = %s, expected A", g.cursor)
	}
	press(g, platformcore.ActionLeft)
	if g.cursor != core.PegC {
		t.Errorf("cursor after left from A = %s, expected C (wrap)", g.cursor)
	}
	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionRight)
	if g.cursor != core.PegB {
		t.Errorf("cursor = %s, expected B", g.cursor)
	}

	// pick from A with the cursor, drop on C
	press(g, platformcore.ActionLeft)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionLeft)
	res := press(g, platformcore.ActionConfirm)

	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", res.State.Moves)
	}
	if top := g.Snapshot().Pegs[core.PegC]; !reflect.DeepEqual(top, []core.Disc{1}) {
		t.Errorf("peg C = %v, expected [1]", top)
	}
}

func TestAutoSolve(t *testing.T) {
	g := newTestGame(t, New(), 3)

	// a few manual moves first; auto-solve starts over
	play(g, []core.Move{{From: core.PegA, To: core.PegB}})
	press(g, platformcore.ActionSolve)

	snap := g.Snapshot()
	if snap.State != StateAutoSolving {
		t.Fatalf("State = %s, expected %s", snap.State, StateAutoSolving)
	}
	if snap.Moves != 0 || snap.Pending != 7 {
		t.Errorf("Moves/Pending = %d/%d, expected 0/7", snap.Moves, snap.Pending)
	}

	// manual input is ignored while solving
	press(g, platformcore.ActionPeg1)
	if g.Snapshot().Selected != -1 {
		t.Error("selection should be ignored during auto-solve")
	}

	res := idle(g, 7*ticksPerMove)
	if !res.State.Won || !res.State.AutoSolved {
		t.Fatalf("Won = %v, AutoSolved = %v, expected both true", res.State.Won, res.State.AutoSolved)
	}
	if res.State.Moves != 7 || !res.State.Optimal {
		t.Errorf("Moves = %d, Optimal = %v, expected 7, true", res.State.Moves, res.State.Optimal)
	}
	if g.playback.Active() {
		t.Error("playback should be drained")
	}
}

func TestAutoSolveFromSetup(t *testing.T) {
	g := newTestGame(t, New(), 0)

	press(g, platformcore.ActionSolve)
	if g.Snapshot().State != StateAutoSolving {
		t.Fatalf("State = %s, expected %s", g.Snapshot().State, StateAutoSolving)
	}
	res := idle(g, 7*ticksPerMove)
	if !res.State.Won {
		t.Error("auto-solve from the pre-game board should finish solved")
	}
}

func TestResetCancelsAutoSolve(t *testing.T) {
	g := newTestGame(t, New(), 4)

	press(g, platformcore.ActionSolve)
	idle(g, 2*ticksPerMove)
	if got := g.State().Moves; got != 2 {
		t.Fatalf("Moves = %d, expected 2 applied before reset", got)
	}

	press(g, platformcore.ActionReset)
	idle(g, 20*ticksPerMove)

	snap := g.Snapshot()
	if snap.State != StateSetup {
		t.Errorf("State = %s, expected %s", snap.State, StateSetup)
	}
	if snap.Discs != 4 {
		t.Errorf("Discs = %d, expected reset to keep 4", snap.Discs)
	}
	if snap.Moves != 0 || snap.Pending != 0 {
		t.Errorf("Moves/Pending = %d/%d, expected 0/0", snap.Moves, snap.Pending)
	}
}

func TestRestartCancelsAutoSolve(t *testing.T) {
	g := newTestGame(t, New(), 3)

	press(g, platformcore.ActionSolve)
	idle(g, ticksPerMove)
	press(g, platformcore.ActionRestart)
	idle(g, 10*ticksPerMove)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if snap.Moves != 0 {
		t.Errorf("Moves = %d, expected stale playback to apply nothing", snap.Moves)
	}
	if len(snap.Pegs[core.PegA]) != 3 {
		t.Errorf("peg A height = %d, expected 3", len(snap.Pegs[core.PegA]))
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New(), 3)

	press(g, platformcore.ActionSolve)
	press(g, platformcore.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	idle(g, 5*ticksPerMove)
	if got := g.State().Moves; got != 0 {
		t.Errorf("Moves = %d while paused, expected 0", got)
	}

	press(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
	res := idle(g, 7*ticksPerMove)
	if !res.State.Won {
		t.Error("playback should resume after unpausing")
	}
}

func TestLooseVariant(t *testing.T) {
	g := newTestGame(t, NewLoose(), 3)

	if g.ID() != "hanoi_loose" {
		t.Errorf("ID() = %q, expected hanoi_loose", g.ID())
	}
	res := play(g, core.Solve(3, core.PegA, core.PegB, core.PegC))
	if !res.State.Won {
		t.Error("loose variant should be won with the tower on B")
	}

	classic := newTestGame(t, New(), 3)
	res = play(classic, core.Solve(3, core.PegA, core.PegB, core.PegC))
	if res.State.Won {
		t.Error("classic variant should not be won with the tower on B")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New(), 3)
	cfg := testConfig()

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	str := screen.String()
	for _, want := range []string{"Tower of Hanoi", "Moves: 0", "Minimum: 7", "Tower 1", "Tower 3"} {
		if !strings.Contains(str, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// largest disc sits on the base of peg A
	boardX := (cfg.ScreenW - boardW) / 2
	center := boardX + pegWidth/2
	cell := screen.GetCell(center+3, baseRow-1)
	if cell.Rune != discRune {
		t.Errorf("expected disc at bottom of peg A, got %q", cell.Rune)
	}
	if cell.Color != platformcore.ColorYellow {
		t.Errorf("disc 3 color = %v, expected yellow", cell.Color)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	SetStartDiscs(3)
	t.Cleanup(func() { SetStartDiscs(0) })

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Lang: "en"})

	screen := platformcore.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
}

func TestSetDiscsOverridesStartDiscs(t *testing.T) {
	g := New()
	g.SetDiscs(5)
	newTestGame(t, g, 3)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if snap.Discs != 5 || len(snap.Pegs[core.PegA]) != 5 {
		t.Errorf("Discs = %d, peg A = %v, expected 5 discs", snap.Discs, snap.Pegs[core.PegA])
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, New(), 3)
	play(g, core.Solve(3, core.PegA, core.PegC, core.PegB)[:2])

	g.Resize(40, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	// input is ignored while the window is too small
	press(g, platformcore.ActionPeg1)
	press(g, platformcore.ActionPeg2)

	g.Resize(80, 24)
	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if snap.Moves != 2 {
		t.Errorf("Moves = %d, expected 2 after resizing", snap.Moves)
	}
}

func TestGameRenderFrench(t *testing.T) {
	SetStartDiscs(3)
	t.Cleanup(func() { SetStartDiscs(0) })

	g := New()
	cfg := testConfig()
	cfg.Lang = "fr"
	g.Reset(cfg)

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Tour 2") {
		t.Error("french render should label pegs Tour N")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []platformcore.Action{
		platformcore.ActionRight, platformcore.ActionPeg1, platformcore.ActionPeg3,
		platformcore.ActionPeg1, platformcore.ActionPeg3, platformcore.ActionSolve,
	}

	run := func() Snapshot {
		g := newTestGame(t, New(), 4)
		for _, a := range inputs {
			press(g, a)
		}
		idle(g, 100)
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"hanoi", "hanoi_loose"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}
