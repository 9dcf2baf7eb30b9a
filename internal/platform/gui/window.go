// Package gui is the desktop frontend: an ebiten window that draws the
// field in pixels and feeds key and mouse input to the game.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Debug font cell size used to center text.
const (
	glyphW = 6
	glyphH = 16
)

var (
	shipColor   = color.RGBA{40, 60, 160, 255}
	alienColor  = color.RGBA{60, 160, 60, 255}
	buttonColor = color.RGBA{0, 255, 0, 255}
	shadeColor  = color.RGBA{0, 0, 0, 96}
)

// EventHandler receives the events of every tick, e.g. to play sounds.
type EventHandler interface {
	Handle(events []core.Event)
}

// Options are the optional collaborators of a window session.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Sound      EventHandler
	Fullscreen bool
}

// Window adapts an invasion game to ebiten.Game.
type Window struct {
	game   *invasion.Game
	opts   Options
	frame  core.InputFrame
	bg     color.RGBA
	bullet color.RGBA
	width  int
	height int
}

// NewWindow resets game for the runtime geometry and wraps it.
func NewWindow(game *invasion.Game, runtime core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Store != nil {
		high, err := opts.Store.HighScore(game.ID())
		if err != nil {
			opts.Logger.Warn("could not read high score", "error", err)
		}
		runtime.HighScore = max(runtime.HighScore, high)
	}
	game.Reset(runtime)

	cfg := game.Config()
	w, h := game.Field()
	return &Window{
		game:   game,
		opts:   opts,
		frame:  core.NewInputFrame(),
		bg:     rgb(cfg.Screen.BgColor),
		bullet: rgb(cfg.Bullet.Color),
		width:  w,
		height: h,
	}
}

func rgb(c [3]int) color.RGBA {
	r := uint8(core.Clamp(c[0], 0, 255)) //#nosec G115 -- clamped to byte range
	g := uint8(core.Clamp(c[1], 0, 255)) //#nosec G115 -- clamped to byte range
	b := uint8(core.Clamp(c[2], 0, 255)) //#nosec G115 -- clamped to byte range
	return color.RGBA{r, g, b, 255}
}

// Update polls input and advances the game one tick.
func (w *Window) Update() error {
	pollInput(&w.frame)
	defer w.frame.Clear()

	if w.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := w.game.Step(w.frame)
	if w.opts.Sound != nil && len(res.Events) > 0 {
		w.opts.Sound.Handle(res.Events)
	}
	if res.Has(core.EventGameStarted) {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if res.Has(core.EventGameOver) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		w.recordScore()
	}
	return nil
}

func (w *Window) recordScore() {
	stats := w.game.Stats()
	w.opts.Logger.Info("game over", "mode", w.game.ID(), "score", stats.Score, "level", stats.Level)
	if w.opts.Store == nil || stats.Score <= 0 {
		return
	}
	if _, err := w.opts.Store.SaveScore(w.game.ID(), stats.Score, stats.Level); err != nil {
		w.opts.Logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.bg)
	snap := w.game.Snapshot()

	drawShip(screen, snap.Ship, shipColor)
	for _, r := range snap.Bullets {
		fillRect(screen, r, w.bullet)
	}
	for _, r := range snap.Aliens {
		drawAlien(screen, r)
	}

	switch {
	case snap.PreStart || snap.Phase == invasion.PhaseGameOver:
		w.drawPlayButton(screen, snap)
	case snap.Paused:
		w.drawBanner(screen, "PAUSED - press P")
	}

	w.drawScoreboard(screen, snap)
}

// Layout keeps the logical screen at the field size; ebiten scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawShip draws a hull with a cannon on top.
func drawShip(dst *ebiten.Image, r core.Rect, c color.Color) {
	hull := core.NewRect(r.X, r.Y+r.H/3, r.W, r.H-r.H/3)
	cannon := core.NewRect(r.X+r.W*2/5, r.Y, max(r.W/5, 1), r.H/3)
	fillRect(dst, hull, c)
	fillRect(dst, cannon, c)
}

// drawAlien draws a body with two eyes.
func drawAlien(dst *ebiten.Image, r core.Rect) {
	fillRect(dst, r, alienColor)
	eye := max(r.W/6, 1)
	y := r.Y + r.H/3
	fillRect(dst, core.NewRect(r.X+r.W/4, y, eye, eye), color.White)
	fillRect(dst, core.NewRect(r.X+r.W*3/4-eye, y, eye, eye), color.White)
}

func (w *Window) drawPlayButton(dst *ebiten.Image, snap invasion.Snapshot) {
	if snap.Phase == invasion.PhaseGameOver {
		msg := fmt.Sprintf("GAME OVER - score %d", snap.Score)
		ebitenutil.DebugPrintAt(dst, msg, (w.width-len(msg)*glyphW)/2, snap.PlayButton.Y-2*glyphH)
	}

	fillRect(dst, snap.PlayButton, buttonColor)
	label := "Play"
	cx, cy := snap.PlayButton.Center()
	ebitenutil.DebugPrintAt(dst, label, cx-len(label)*glyphW/2, cy-glyphH/2)
}

func (w *Window) drawBanner(dst *ebiten.Image, msg string) {
	band := core.NewRect(0, w.height/2-glyphH, w.width, 2*glyphH)
	fillRect(dst, band, shadeColor)
	ebitenutil.DebugPrintAt(dst, msg, (w.width-len(msg)*glyphW)/2, w.height/2-glyphH/2)
}

// drawScoreboard puts the score top right, the high score top center,
// the level under the score and the remaining ships top left.
func (w *Window) drawScoreboard(dst *ebiten.Image, snap invasion.Snapshot) {
	score := fmt.Sprintf("%d", snap.Score)
	high := fmt.Sprintf("High %d", snap.HighScore)
	level := fmt.Sprintf("Level %d", snap.Level)

	ebitenutil.DebugPrintAt(dst, score, w.width-len(score)*glyphW-20, 10)
	ebitenutil.DebugPrintAt(dst, high, (w.width-len(high)*glyphW)/2, 10)
	ebitenutil.DebugPrintAt(dst, level, w.width-len(level)*glyphW-20, 10+glyphH)

	icon := core.NewRect(10, 10, max(snap.Ship.W/2, 4), max(snap.Ship.H/2, 4))
	for range snap.ShipsLeft {
		drawShip(dst, icon, shipColor)
		icon.X += icon.W + 6
	}
}

// Run opens the window and plays until the player quits or closes it.
func Run(game *invasion.Game, runtime core.RuntimeConfig, opts Options) error {
	if opts.Fullscreen {
		runtime.ScreenW, runtime.ScreenH = ebiten.ScreenSizeInFullscreen()
		ebiten.SetFullscreen(true)
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	w := NewWindow(game, runtime, opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("Alien Invasion")
	ebiten.SetTPS(runtime.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
