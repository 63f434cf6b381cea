package snowplow

import (
	"fmt"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

// Each grid cell renders as two characters so the street reads roughly
// square in a terminal font.
const cellW = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	g.renderHUD(dst)

	top := 3
	left := (w - g.grid.W*cellW) / 2
	if left < 0 {
		left = 0
	}

	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := g.grid.At(x, y)
			r, color := cellLook(c)
			sx := left + x*cellW
			dst.SetColored(sx, top+y, r, color)
			dst.SetColored(sx+1, top+y, r, color)
		}
	}

	// The plow overdraws its cell, pointing where it last moved.
	px := left + g.plowX*cellW
	py := top + g.plowY
	dst.DrawTextColored(px, py, plowGlyph(g.lastDX, g.lastDY), core.ColorYellow)

	if g.findLeft > 0 {
		dst.DrawTextCenteredColored(top+g.grid.H+1, g.findLabel, core.ColorGreen)
	}

	switch g.round.Phase() {
	case sim.PhaseLevelUp:
		msg := fmt.Sprintf("── %s ──", g.round.LevelCfg().Name)
		dst.DrawTextCenteredColored(h/2, msg, core.ColorCyan)
	case sim.PhaseEnded:
		dst.DrawTextCenteredColored(h/2, "VAKT LOKIÐ", core.ColorRed)
		dst.DrawTextCenteredColored(h/2+1, fmt.Sprintf("Stig: %d", g.round.Score()), core.ColorWhite)
		dst.DrawTextCenteredColored(h/2+2, "R: aftur  Q: hætta", core.ColorGray)
	}

	if g.paused {
		dst.DrawTextCenteredColored(h/2, "║ PÁSA ║", core.ColorYellow)
	}
}

// cellLook maps a cell to its glyph and color.
func cellLook(c *Cell) (rune, core.Color) {
	switch c.Kind {
	case CellObstacle:
		return '█', core.ColorRed
	case CellDeep:
		return '▓', core.ColorWhite
	case CellSnow:
		return '▒', core.ColorWhite
	default:
		if c.Ice {
			return '~', core.ColorCyan
		}
		return '·', core.ColorGray
	}
}

// plowGlyph points the plow in its last direction of travel.
func plowGlyph(dx, dy int) string {
	switch {
	case dx < 0:
		return "◀▪"
	case dy < 0:
		return "▲▪"
	case dy > 0:
		return "▼▪"
	default:
		return "▪▶"
	}
}

// renderHUD draws the top status row.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("%s  │  Stig: %d  │  Snjór: %d/%d  │  Tími: %ds",
		g.round.LevelCfg().Name, g.round.Score(),
		g.round.QuotaProgress(), g.round.Quota(), g.round.TimeLeft())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
