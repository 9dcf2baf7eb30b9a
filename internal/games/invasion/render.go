package invasion

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Terminal glyphs. Sprites wider than their pattern fall back to a fill.
const (
	shipPattern  = "/^A^\\"
	alienPattern = "<O>"
	alienFill    = '▓'
	shipFill     = '█'
	bulletChar   = '|'
	lifeChar     = 'A'
)

// Render draws the session into dst. The field is anchored to the bottom
// of dst; any rows above it hold the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := dst.Height() - g.fieldH
	if g.fleet.Capacity() == 0 {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderAliens(dst, top)
	g.renderBullets(dst, top)
	g.renderShip(dst, top)
	g.renderOverlay(dst, top)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	needW := 4 * g.cfg.Alien.Width
	needH := 5*g.cfg.Alien.Height + g.cfg.Ship.Height + g.hudRows
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", needW, needH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d", g.stats.Score)
	mid := fmt.Sprintf("High: %d", g.stats.HighScore)
	right := fmt.Sprintf("Lv %d %s", g.stats.Level, strings.Repeat(string(lifeChar), g.stats.ShipsLeft))

	// Without HUD rows the scoreboard overlays the top row of the field.
	dst.DrawTextColored(1, 0, left, core.ColorWhite)
	dst.DrawTextColored((dst.Width()-len(mid))/2, 0, mid, core.ColorCyan)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorBrightGreen)
}

func (g *Game) renderAliens(dst *core.Screen, top int) {
	for _, a := range g.fleet.Aliens() {
		r := a.Rect()
		r.Y += top
		drawSprite(dst, r, alienPattern, alienFill, core.ColorBrightMagenta)
	}
}

func (g *Game) renderBullets(dst *core.Screen, top int) {
	for _, b := range g.bullets.Items() {
		r := b.Rect()
		r.Y += top
		dst.DrawRect(r, bulletChar, core.ColorYellow)
	}
}

func (g *Game) renderShip(dst *core.Screen, top int) {
	if g.phase == PhaseGameOver {
		return
	}
	r := g.ship.Rect()
	r.Y += top
	color := core.ColorGreen
	if g.phase == PhaseRespawn && g.respawnLeft%8 < 4 {
		color = core.ColorGray
	}
	drawSprite(dst, r, shipPattern, shipFill, color)
}

// drawSprite draws pattern on a one-row rect of matching width, otherwise
// fills the rect.
func drawSprite(dst *core.Screen, r core.Rect, pattern string, fill rune, c core.Color) {
	if r.H == 1 && r.W == len([]rune(pattern)) {
		dst.DrawTextColored(r.X, r.Y, pattern, c)
		return
	}
	dst.DrawRect(r, fill, c)
}

func (g *Game) renderOverlay(dst *core.Screen, top int) {
	mid := top + g.fieldH/2

	switch g.phase {
	case PhasePreStart:
		dst.DrawTextCentered(mid-3, "ALIEN INVASION")
		g.renderPlayButton(dst, top)
		dst.DrawTextCentered(mid+3, "Enter/click Play  ←/→ move  Space fire  P pause  Q quit")
	case PhaseGameOver:
		dst.DrawTextCentered(mid-3, "GAME OVER")
		dst.DrawTextCentered(mid-2, fmt.Sprintf("Final score: %d", g.stats.Score))
		g.renderPlayButton(dst, top)
	case PhasePaused:
		drawCenteredBox(dst, mid, "PAUSED", "P to resume")
	case PhaseRespawn:
		dst.DrawTextCentered(mid, fmt.Sprintf("Ships left: %d", g.stats.ShipsLeft))
	}
}

func (g *Game) renderPlayButton(dst *core.Screen, top int) {
	r := g.PlayButton()
	r.Y += top
	dst.DrawRect(r, ' ', core.ColorDefault)
	if r.W >= 2 && r.H >= 2 {
		dst.DrawBox(r, core.ColorBrightGreen)
	}
	label := "Play"
	dst.DrawTextColored(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, core.ColorBrightGreen)
}

func drawCenteredBox(dst *core.Screen, y int, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 4
	r := core.NewRect((dst.Width()-w)/2, y-2, w, 5)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(y-1, title)
	dst.DrawTextCentered(y+1, subtitle)
}
