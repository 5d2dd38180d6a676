package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// drawHUD draws the status line and, in debug mode, the physics readout.
func (g *Game) drawHUD(dst *core.Screen) {
	status := fmt.Sprintf(" %s  time %5.1fs  falls %d  score %d ", g.level.Name, g.Elapsed(), g.falls, g.score)
	dst.DrawTextColor(1, 0, status, core.ColorBrightWhite)

	if !g.debug {
		return
	}
	p := g.player
	dst.DrawTextColor(1, 1, fmt.Sprintf(" pos %8.2f %8.2f  vel %6.2f %6.2f  tick %d ",
		p.Pos.X, p.Pos.Y, p.Motion.X, p.Motion.Y, g.tickCount), core.ColorCyan)
	dst.DrawTextColor(1, 2, " "+contactFlags(p.OnGround, p.TouchingLeftWall, p.TouchingRightWall, p.TouchingCeiling)+" ",
		core.ColorCyan)
}

// contactFlags renders contact state as [G][L][R][C], with '-' for clear flags.
func contactFlags(ground, left, right, ceiling bool) string {
	flag := func(on bool, c byte) string {
		if on {
			return "[" + string(c) + "]"
		}
		return "[-]"
	}
	return flag(ground, 'G') + flag(left, 'L') + flag(right, 'R') + flag(ceiling, 'C')
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
