package hook

import (
	"fmt"
	"strings"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/sim"
)

// Horizontal game space spans truck travel plus arm offset and tolerance.
const spanX = 110.0

func classColor(class string) core.Color {
	switch class {
	case "heavy":
		return core.ColorMagenta
	case "priority":
		return core.ColorRed
	case "bonus":
		return core.ColorYellow
	default:
		return core.ColorCyan
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	g.renderHUD(dst)

	railRow := 3
	groundRow := h - 3
	scale := func(x float64) int {
		return int(x / spanX * float64(w-1))
	}

	dst.DrawHLine(0, railRow, w, '═')
	dst.DrawHLine(0, groundRow+1, w, '▔')

	// Crane trolley on the rail.
	tx := scale(g.truckX)
	dst.DrawTextColored(tx, railRow-1, "▛██▜", core.ColorYellow)

	// Cable down from the hook point, proportional to reach.
	hx := scale(g.hookX())
	depth := int(g.reach / g.gameCfg.Arm.MaxReach * float64(groundRow-railRow-1))
	dst.DrawVLine(hx, railRow+1, depth, '│')
	hookRune := '↓'
	if g.carrying {
		hookRune = '▣'
	}
	dst.SetColored(hx, railRow+1+depth, hookRune, core.ColorWhite)

	// Container on the ground.
	if c := g.container; c != nil {
		cx := scale(c.X)
		color := classColor(c.Category)
		dst.DrawTextColored(cx-1, groundRow, "▐█▌", color)
		dst.DrawTextColored(cx-len(c.Label)/2, groundRow-1, c.Label, color)
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

// renderHUD draws the top status row with a wind indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("%s  │  Stig: %d  │  Gámar: %d/%d  │  Tími: %ds",
		g.round.LevelCfg().Name, g.round.Score(),
		g.round.QuotaProgress(), g.round.Quota(), g.round.TimeLeft())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if g.windy() && g.state == armExtending {
		arrow, n := "→", int(g.wind)
		if g.wind < 0 {
			arrow, n = "←", -n
		}
		if n < 1 {
			n = 1
		}
		dst.DrawTextColored(1, 1, "Vindur: "+strings.Repeat(arrow, n), core.ColorCyan)
	}
	dst.DrawHLine(0, 2, dst.Width(), '─')
}
