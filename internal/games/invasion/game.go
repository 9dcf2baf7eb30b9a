// Package invasion implements Alien Invasion: a ship at the bottom of the
// field shoots down a marching fleet before it lands or rams the ship.
//
// The game is a pure tick-driven simulation. Frontends feed it one
// core.InputFrame per tick and read back a Snapshot or a rendered Screen.
package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhasePreStart Phase = iota // Fresh session, waiting for Play
	PhaseActive                // Simulation running
	PhasePaused                // Player pause, nothing moves
	PhaseRespawn               // Frozen for a few ticks after losing a ship
	PhaseGameOver              // Out of ships, waiting for Play
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePreStart:
		return "prestart"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseRespawn:
		return "respawn"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	profile          = config.ProfileTerminal
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetProfile selects the unit system games are created with.
// The terminal frontend uses cells, the window frontend pixels.
func SetProfile(p config.Profile) {
	profile = p
}

// Game implements Alien Invasion.
type Game struct {
	piercing bool
	fixed    *config.InvasionConfig // Set by NewWithConfig, bypasses loading

	cfg     config.InvasionConfig
	runtime core.RuntimeConfig
	dynamic *config.Dynamic

	stats   Stats
	ship    *Ship
	bullets *Bullets
	fleet   *Fleet

	phase        Phase
	respawnLeft  int
	respawnTotal int
	tick         uint64

	fieldW, fieldH int
	hudRows        int

	events []core.Event
}

// New creates a standard game.
func New() *Game {
	return &Game{}
}

// NewPiercing creates a game whose bullets pass through aliens.
func NewPiercing() *Game {
	return &Game{piercing: true}
}

// NewWithConfig creates a game with a fixed configuration instead of
// loading one. The piercing flag of cfg is honoured as given.
func NewWithConfig(cfg config.InvasionConfig) *Game {
	cfg.Validate()
	return &Game{fixed: &cfg, piercing: cfg.Bullet.Piercing}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.piercing {
		return "invasion_piercing"
	}
	return "invasion"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.piercing {
		return "Alien Invasion (Piercing)"
	}
	return "Alien Invasion"
}

// Reset builds a fresh session in the pre-start phase. The high score seen
// so far by this instance or recorded in runtime.HighScore is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	// The terminal frontend reserves the top row for the HUD.
	g.hudRows = 0
	if profile == config.ProfileTerminal {
		g.hudRows = 1
	}
	g.fieldW = max(runtime.ScreenW, 0)
	g.fieldH = max(runtime.ScreenH-g.hudRows, 0)

	g.dynamic = config.NewDynamic(g.cfg.Dynamic, g.cfg.Scaling)

	highScore := g.stats.HighScore
	g.stats = Stats{}
	g.stats.Reset(g.cfg.Ship.Limit)
	g.stats.SeedHighScore(highScore)
	g.stats.SeedHighScore(runtime.HighScore)

	g.ship = NewShip(g.cfg.Ship.Width, g.cfg.Ship.Height)
	g.ship.Center(g.fieldW, g.fieldH)
	g.bullets = NewBullets(g.cfg.Bullet.Width, g.cfg.Bullet.Height)
	g.fleet = NewFleet(Layout{
		FieldW: g.fieldW,
		FieldH: g.fieldH,
		ShipH:  g.cfg.Ship.Height,
		AlienW: g.cfg.Alien.Width,
		AlienH: g.cfg.Alien.Height,
	})
	g.fleet.Spawn()

	g.phase = PhasePreStart
	g.respawnLeft = 0
	g.respawnTotal = g.cfg.RespawnTicks(runtime.TickRate)
	g.tick = 0
	g.events = nil
}

func (g *Game) loadConfig() config.InvasionConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadInvasion(configPath, profile)
	if err != nil {
		cfg = config.DefaultInvasionConfig(profile)
	}
	if difficultyPreset != "" {
		config.ApplyInvasionPreset(&cfg, difficultyPreset)
	}
	if g.piercing {
		cfg.Bullet.Piercing = true
	}
	cfg.Validate()
	return cfg
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	g.handleInput(in)

	switch g.phase {
	case PhaseActive:
		g.tick++
		g.update()
	case PhaseRespawn:
		g.tick++
		g.respawnLeft--
		if g.respawnLeft <= 0 {
			g.respawnLeft = 0
			g.phase = PhaseActive
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// handleInput applies the intents of one frame. Movement flags follow the
// keys in every phase so a key held through a pause or respawn still counts.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.MovingLeft = true
	}
	if in.Has(core.ActionRight) {
		g.ship.MovingRight = true
	}
	if in.Has(core.ActionLeftRelease) {
		g.ship.MovingLeft = false
	}
	if in.Has(core.ActionRightRelease) {
		g.ship.MovingRight = false
	}

	switch g.phase {
	case PhasePreStart, PhaseGameOver:
		if in.Has(core.ActionStart) || g.clickedPlay(in) {
			g.startGame()
		}
	case PhaseActive:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			g.stats.Paused = true
			return
		}
		if in.Has(core.ActionFire) && g.bullets.Fire(g.ship, g.cfg.Bullet.Allowed) {
			g.emit(core.EventFired)
		}
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhaseActive
			g.stats.Paused = false
		}
	}
}

func (g *Game) clickedPlay(in core.InputFrame) bool {
	button := g.PlayButton()
	for _, p := range in.Clicks() {
		if button.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// startGame begins a new game from the pre-start or game over phase.
func (g *Game) startGame() {
	g.stats.Reset(g.cfg.Ship.Limit)
	g.stats.Active = true
	g.stats.Paused = false
	g.dynamic.Reset()

	g.bullets.Clear()
	g.fleet.Clear()
	g.fleet.ResetDirection()
	g.fleet.Spawn()
	g.ship.Center(g.fieldW, g.fieldH)

	g.phase = PhaseActive
	g.respawnLeft = 0
	g.emit(core.EventGameStarted)
}

// update runs one active tick: ship, bullets and hits, then the fleet.
func (g *Game) update() {
	g.ship.Update(g.dynamic.ShipSpeed, g.fieldW)
	g.updateBullets()
	g.updateAliens()
}

func (g *Game) updateBullets() {
	g.bullets.Update(g.dynamic.BulletSpeed)

	report := ResolveBulletHits(g.bullets.Items(), g.fleet.Aliens(), g.cfg.Bullet.Piercing)
	if n := report.Destroyed(); n > 0 {
		g.fleet.Remove(report.Aliens)
		g.bullets.Remove(report.Spent)
		g.stats.AddScore(g.dynamic.AlienPoints * n)
		g.emit(core.EventAlienDestroyed)
	}

	// A field too small for any alien never counts as cleared.
	if g.fleet.Len() == 0 && g.fleet.Capacity() > 0 {
		g.levelUp()
	}
}

func (g *Game) levelUp() {
	g.bullets.Clear()
	g.fleet.Spawn()
	g.dynamic.IncreaseSpeed()
	g.stats.Level++
	g.emit(core.EventLevelUp)
}

func (g *Game) updateAliens() {
	g.fleet.Update(g.dynamic.AlienSpeed, g.cfg.Alien.FleetDropSpeed)

	// At most one ship is lost per tick.
	if g.fleet.Collides(g.ship.Rect()) {
		g.shipHit()
		return
	}
	if g.fleet.ReachedBottom() {
		g.shipHit()
	}
}

// shipHit costs a ship. With ships left the field is rebuilt and the game
// freezes for the respawn pause; otherwise the game is over.
func (g *Game) shipHit() {
	g.emit(core.EventShipHit)

	if g.stats.LoseShip() > 0 {
		g.bullets.Clear()
		g.fleet.Clear()
		g.fleet.Spawn()
		g.ship.Center(g.fieldW, g.fieldH)

		if g.respawnTotal > 0 {
			g.phase = PhaseRespawn
			g.respawnLeft = g.respawnTotal
		}
		return
	}

	g.stats.Active = false
	g.phase = PhaseGameOver
	g.emit(core.EventGameOver)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// PlayButton returns the Play button's rectangle in field coordinates.
func (g *Game) PlayButton() core.Rect {
	w := core.Clamp(g.cfg.Screen.Button.Width, 0, g.fieldW)
	h := core.Clamp(g.cfg.Screen.Button.Height, 0, g.fieldH)
	return core.NewRect((g.fieldW-w)/2, (g.fieldH-h)/2, w, h)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns a copy of the current stats.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.InvasionConfig {
	return g.cfg
}

// Field returns the playfield size in world units.
func (g *Game) Field() (w, h int) {
	return g.fieldW, g.fieldH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

func init() {
	registry.Register("invasion", func() registry.Game {
		return New()
	})
	registry.Register("invasion_piercing", func() registry.Game {
		return NewPiercing()
	})
}
