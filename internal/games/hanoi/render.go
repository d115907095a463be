package hanoi

import (
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

const (
	pegWidth  = 2*core.MaxDiscs + 1 // widest disc plus the pole
	pegGap    = 3
	boardW    = core.PegCount*pegWidth + (core.PegCount-1)*pegGap
	poleTop   = 3
	poleH     = core.MaxDiscs + 1
	baseRow   = poleTop + poleH
	labelRow  = baseRow + 1
	cursorRow = baseRow + 2
	msgRow    = baseRow + 3
	hintRow   = baseRow + 4

	minScreenW = boardW + 4
	minScreenH = hintRow + 3
)

const (
	discRune     = '█'
	heldDiscRune = '▓'
	poleRune     = '│'
	baseRune     = '▀'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2

	g.renderHUD(dst, boardX)
	g.renderPegs(dst, boardX)
	g.renderStatus(dst, boardX)
	g.renderControls(dst)

	switch {
	case g.paused:
		g.renderPaused(dst)
	case g.state.Phase() == core.PhaseWon:
		g.renderWin(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, g.tr.Get("TOO_SMALL"))
	dst.DrawTextCentered(y+1, g.tr.Get("TOO_SMALL_HINT"))
}

// renderHUD draws the title, move counter and minimum.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX int) {
	title := g.tr.Get("TITLE")
	if g.variant == VariantLoose {
		title = g.tr.Get("TITLE_LOOSE")
	}
	dst.DrawTextCentered(0, title)

	moves := g.tr.Getf("HUD_MOVES", g.state.MoveCount())
	minimum := g.tr.Getf("HUD_MIN", g.state.MinMoves())
	discs := g.tr.Getf("HUD_DISCS", g.state.DiscCount())

	dst.DrawText(boardX, 1, moves)
	drawCentered(dst, boardX, boardW, 1, minimum, platformcore.ColorDefault)
	dst.DrawText(boardX+boardW-textWidth(discs), 1, discs)
}

// renderPegs draws the poles, the discs and the peg labels.
func (g *Game) renderPegs(dst *platformcore.Screen, boardX int) {
	heldPeg, _, held := g.state.Selection()
	pegs := g.state.Pegs()

	dst.DrawHLine(boardX, baseRow, boardW, baseRune, platformcore.ColorGray)

	for i := range core.PegCount {
		peg := core.PegID(i)
		left := boardX + i*(pegWidth+pegGap)
		center := left + pegWidth/2

		dst.DrawVLine(center, poleTop, poleH, poleRune, platformcore.ColorGray)

		stack := pegs[i]
		for level, disc := range stack {
			y := baseRow - 1 - level
			r, c := discRune, g.discColor(disc)
			if held && peg == heldPeg && level == len(stack)-1 {
				r, c = heldDiscRune, platformcore.ColorBrightWhite
			}
			w := 2*int(disc) + 1
			dst.DrawHLine(center-w/2, y, w, r, c)
		}

		labelColor := platformcore.ColorDefault
		if peg == g.state.Target() {
			labelColor = platformcore.ColorBrightYellow
		}
		drawCentered(dst, left, pegWidth, labelRow, g.pegLabel(i), labelColor)

		if g.state.Phase() == core.PhaseInProgress && peg == g.cursor {
			drawCentered(dst, left, pegWidth, cursorRow, "▲", platformcore.ColorBrightCyan)
		}
	}
}

// renderStatus draws the setup prompt, the playback progress or the current
// notice under the board.
func (g *Game) renderStatus(dst *platformcore.Screen, boardX int) {
	switch g.state.Phase() {
	case core.PhaseNotStarted:
		drawCentered(dst, boardX, boardW, msgRow, g.tr.Get("SETUP_PROMPT"), platformcore.ColorBrightGreen)
		drawCentered(dst, boardX, boardW, hintRow, g.tr.Get("SETUP_ADJUST"), platformcore.ColorGray)
	case core.PhaseAutoSolving:
		progress := g.tr.Getf("AUTO_SOLVING", g.playback.Applied(), g.playback.Total())
		drawCentered(dst, boardX, boardW, msgRow, progress, platformcore.ColorBrightCyan)
	default:
		if g.message != "" {
			drawCentered(dst, boardX, boardW, msgRow, g.message, platformcore.ColorBrightRed)
		}
	}
}

// renderControls draws the key help on the last line.
func (g *Game) renderControls(dst *platformcore.Screen) {
	controls := g.tr.Get("CONTROLS")
	x := max((g.screenW-textWidth(controls))/2, 0)
	dst.DrawTextColored(x, g.screenH-1, controls, platformcore.ColorGray)
}

// renderWin draws the result overlay.
func (g *Game) renderWin(dst *platformcore.Screen) {
	info := g.state.Win()
	lines := []string{
		g.tr.Get("WIN_TITLE"),
		g.tr.Getf("WIN_MOVES", info.MoveCount),
	}
	switch {
	case g.autoSolved:
		lines = append(lines, g.tr.Get("WIN_AUTO"))
	case info.Optimal:
		lines = append(lines, g.tr.Get("WIN_PERFECT"))
	default:
		lines = append(lines, g.tr.Getf("WIN_IMPROVE", info.MinMoves))
	}
	lines = append(lines, "", g.tr.Get("WIN_HINT"))
	g.renderBox(dst, lines, platformcore.ColorBrightGreen)
}

// renderPaused draws the pause overlay.
func (g *Game) renderPaused(dst *platformcore.Screen) {
	g.renderBox(dst, []string{g.tr.Get("PAUSED"), g.tr.Get("PAUSED_HINT")}, platformcore.ColorBrightYellow)
}

// renderBox draws a framed box centered over the board. The first line is
// the heading and gets the accent color.
func (g *Game) renderBox(dst *platformcore.Screen, lines []string, accent platformcore.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	w = min(w+4, g.screenW)
	h := len(lines) + 2

	x := (g.screenW - w) / 2
	y := poleTop + (poleH-h)/2
	box := platformcore.NewRect(x, y, w, h)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = accent
		}
		drawCentered(dst, x, w, y+1+i, l, c)
	}
}

func (g *Game) discColor(d core.Disc) platformcore.Color {
	i := int(d) - 1
	if i < 0 || i >= len(g.palette) {
		return platformcore.ColorWhite
	}
	return g.palette[i]
}

func (g *Game) pegLabel(i int) string {
	if labels := g.cfg.Display.PegLabels; len(labels) == core.PegCount {
		return labels[i]
	}
	return g.tr.Getf("PEG_LABEL", i+1)
}

// drawCentered draws text centered within the span [x, x+w).
func drawCentered(dst *platformcore.Screen, x, w, y int, text string, c platformcore.Color) {
	dst.DrawTextColored(x+(w-textWidth(text))/2, y, text, c)
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
