package garbage

import (
	"fmt"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

// binColor maps each category to its standard container color.
func binColor(b Bin) core.Color {
	switch b {
	case BinPlast:
		return core.ColorYellow
	case BinPappi:
		return core.ColorBlue
	case BinMatur:
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	g.renderHUD(dst)

	// Belt rails and the bin line. Game space is 0-100 vertically,
	// mapped onto the rows between the HUD and the bin row.
	top := 2
	binRow := h - 3
	lineRow := binRow - 1
	beltX := w / 2

	for y := top; y < lineRow; y++ {
		dst.SetColored(beltX-6, y, BeltChar, core.ColorGray)
		dst.SetColored(beltX+6, y, BeltChar, core.ColorGray)
	}
	dst.DrawHLine(0, lineRow, w, LineChar)

	for _, e := range g.round.Entities() {
		y := top + int(e.Y/100*float64(lineRow-top))
		if y >= lineRow {
			y = lineRow - 1
		}
		var b Bin
		for _, bin := range Bins {
			if bin.String() == e.Category {
				b = bin
			}
		}
		dst.SetColored(beltX, y, ItemChar, binColor(b))
		dst.DrawTextColored(beltX+2, y, e.Label, binColor(b))
	}

	g.renderBins(dst, binRow)

	switch g.round.Phase() {
	case sim.PhaseLevelUp:
		msg := fmt.Sprintf("── %s ──", g.round.LevelCfg().Name)
		dst.DrawTextCenteredColored(h/2, msg, core.ColorCyan)
	case sim.PhaseReporting:
		g.renderReport(dst)
	case sim.PhaseEnded:
		dst.DrawTextCenteredColored(h/2, "VAKT LOKIÐ", core.ColorRed)
		dst.DrawTextCenteredColored(h/2+1, fmt.Sprintf("Stig: %d", g.round.Score()), core.ColorWhite)
		dst.DrawTextCenteredColored(h/2+2, "R: aftur  Q: hætta", core.ColorGray)
	}

	if g.paused {
		dst.DrawTextCenteredColored(h/2, "║ PÁSA ║", core.ColorYellow)
	}
}

// renderHUD draws the top status row.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("%s  │  Stig: %d  │  Keðja: x%d  │  Flokkað: %d/%d  │  Tími: %ds",
		g.round.LevelCfg().Name, g.round.Score(), g.round.Combo(),
		g.round.QuotaProgress(), g.round.Quota(), g.round.TimeLeft())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), LineChar)
}

// renderBins draws the four bins with the active one highlighted.
func (g *Game) renderBins(dst *core.Screen, row int) {
	w := dst.Width()
	slot := w / len(Bins)
	for i, b := range Bins {
		x := i*slot + slot/2
		label := fmt.Sprintf("%d:%s", i+1, b.String())
		color := binColor(b)
		if b == g.activeBin {
			label = "[" + label + "]"
			dst.DrawTextColored(x-len(label)/2, row+1, "▲", color)
		}
		dst.DrawTextColored(x-len(label)/2, row, label, color)
	}
}

// renderReport draws the end-of-round mistake summary.
func (g *Game) renderReport(dst *core.Screen) {
	h := dst.Height()
	mistakes := g.round.Mistakes()
	y := h/2 - len(mistakes)/2 - 2
	dst.DrawTextCenteredColored(y, "── SKÝRSLA VERKSTJÓRA ──", core.ColorCyan)
	y += 2
	if len(mistakes) == 0 {
		dst.DrawTextCenteredColored(y, "Engin mistök! Vel gert.", core.ColorGreen)
		y++
	}
	for i, m := range mistakes {
		if i >= 8 {
			dst.DrawTextCenteredColored(y, fmt.Sprintf("... og %d í viðbót", len(mistakes)-i), core.ColorGray)
			break
		}
		line := fmt.Sprintf("%s fór í %s en átti að fara í %s", m.Item, m.Chosen, m.Correct)
		dst.DrawTextCenteredColored(y, line, core.ColorRed)
		y++
	}
	dst.DrawTextCenteredColored(y+1, "Enter: halda áfram", core.ColorGray)
}
