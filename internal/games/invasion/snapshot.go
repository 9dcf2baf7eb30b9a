package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Snapshot is a read-only view of a session after a tick. Renderers draw
// from it and tests compare it; it shares no memory with the game.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	FieldW, FieldH int

	Ship    core.Rect
	Bullets []core.Rect
	Aliens  []core.Rect

	Score     int
	Level     int
	ShipsLeft int
	HighScore int

	Active       bool
	Paused       bool
	PreStart     bool
	RespawnTicks int
	Direction    int

	PlayButton core.Rect
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]core.Rect, 0, g.bullets.Len())
	for _, b := range g.bullets.Items() {
		bullets = append(bullets, b.Rect())
	}
	aliens := make([]core.Rect, 0, g.fleet.Len())
	for _, a := range g.fleet.Aliens() {
		aliens = append(aliens, a.Rect())
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		FieldW:       g.fieldW,
		FieldH:       g.fieldH,
		Ship:         g.ship.Rect(),
		Bullets:      bullets,
		Aliens:       aliens,
		Score:        g.stats.Score,
		Level:        g.stats.Level,
		ShipsLeft:    g.stats.ShipsLeft,
		HighScore:    g.stats.HighScore,
		Active:       g.stats.Active,
		Paused:       g.phase == PhasePaused,
		PreStart:     g.phase == PhasePreStart,
		RespawnTicks: g.respawnLeft,
		Direction:    g.fleet.Direction(),
		PlayButton:   g.PlayButton(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RespawnTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction+1)  //#nosec G115 -- hash computation
	h = hashRect(h, snap.Ship)

	h = h*31 + uint64(len(snap.Bullets))
	for _, r := range snap.Bullets {
		h = hashRect(h, r)
	}

	h = h*31 + uint64(len(snap.Aliens))
	for _, r := range snap.Aliens {
		h = hashRect(h, r)
	}

	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + uint64(r.X) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.W) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.H) //#nosec G115 -- hash computation
	return h
}
