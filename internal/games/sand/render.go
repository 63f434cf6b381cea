package sand

import (
	"fmt"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	g.renderHUD(dst)

	gaugeRow := h / 2
	scale := func(deg float64) int {
		return int(deg / 180 * float64(w-3))
	}

	// Swing gauge: pit on the left, container zone on the right.
	dst.DrawHLine(1, gaugeRow, w-2, '─')
	for x := 1; x <= scale(g.gameCfg.DigRotationMax); x++ {
		dst.SetColored(x, gaugeRow, '▒', core.ColorYellow)
	}
	for x := scale(g.gameCfg.DumpRotationMin); x < w-1; x++ {
		dst.SetColored(x, gaugeRow, '═', core.ColorGray)
	}
	dst.DrawTextColored(1, gaugeRow+1, "SANDUR", core.ColorYellow)
	dst.DrawTextColored(w-7, gaugeRow+1, "GÁMUR", core.ColorCyan)

	// The container slides inside its zone on moving levels.
	dst.SetColored(1+scale(g.container.Pos), gaugeRow, '▣', core.ColorCyan)

	// Boom marker, with the bucket state under it.
	bx := 1 + scale(g.rotation)
	dst.SetColored(bx, gaugeRow-1, '▼', core.ColorWhite)
	bucket := "tóm skófla"
	color := core.ColorGray
	if g.carrying {
		bucket = "FULL SKÓFLA"
		color = core.ColorGreen
	}
	dst.DrawTextColored(bx-len(bucket)/2, gaugeRow-2, bucket, color)

	// Height gauge on the left edge.
	top, bottom := 4, h-4
	dst.DrawVLine(0, top, bottom-top, '│')
	hy := top + int(g.height/100*float64(bottom-top-1))
	dst.SetColored(0, hy, '◆', core.ColorWhite)
	dst.DrawText(1, top, "upp")
	dst.DrawText(1, bottom-1, "niður")

	switch g.round.Phase() {
	case sim.PhaseLevelUp:
		msg := fmt.Sprintf("── %s ──", g.levelRow().Name)
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

// renderHUD draws the top status row with the grade's wind warning.
func (g *Game) renderHUD(dst *core.Screen) {
	row := g.levelRow()
	hud := fmt.Sprintf("%s  │  Stig: %d  │  Sandur: %d/%d  │  Tími: %ds",
		row.Name, g.round.Score(), g.levelScore, row.Quota, g.round.TimeLeft())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
	if row.Wind > 0 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("Vindur: %.0f", row.Wind), core.ColorCyan)
	}
	dst.DrawHLine(0, 2, dst.Width(), '─')
}
