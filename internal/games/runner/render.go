package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "CANNOT START", g.err.Error())
		return
	}

	g.drawSky(dst)
	g.scene.Render(dst, g.camera)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("You %s. Score: %d  |  Press R to restart", g.cause, g.score()))
	}
}

// drawSky marks the horizon line.
func (g *Game) drawSky(dst *core.Screen) {
	y := int(float64(dst.Height()) * g.camera.Horizon)
	dst.DrawHLine(0, y, dst.Width(), '·', core.ColorDarkGray)
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.player

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score()), core.ColorWhite)

	hearts := strings.Repeat("♥", max(p.Health, 0)) + strings.Repeat("♡", max(p.cfg.Health-p.Health, 0))
	dst.DrawTextColored(16, 0, hearts, core.ColorBrightRed)

	gun := "GUN ready"
	gunColor := core.ColorBrightGreen
	if !g.gun.Ready() {
		gun = "GUN " + bar(g.gun.Charge(), 5)
		gunColor = core.ColorYellow
	}
	dst.DrawTextColored(24, 0, gun, gunColor)

	if p.Flying() {
		fuel := "FUEL " + bar(p.Fuel/p.cfg.JetPackSeconds, 5)
		dst.DrawTextColored(36, 0, fuel, core.ColorBrightYellow)
	}

	right := fmt.Sprintf(" %s  Spd: %.1f ", g.stats.Tier, g.speed)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, core.ColorCyan)
}

// bar renders a fill fraction as a fixed-width gauge.
func bar(frac float64, width int) string {
	n := int(core.ClampF(frac, 0, 1)*float64(width) + 0.5)
	return strings.Repeat("▮", n) + strings.Repeat("▯", width-n)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
