package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Layout is the geometry the fleet grid is computed from.
type Layout struct {
	FieldW, FieldH int
	ShipH          int
	AlienW, AlienH int
}

// GridSize returns the number of fleet columns and rows that fit the field.
// A field too small for a single alien yields zero in that dimension.
func (l Layout) GridSize() (cols, rows int) {
	if l.AlienW <= 0 || l.AlienH <= 0 {
		return 0, 0
	}

	cols = (l.FieldW - 2*l.AlienW) / (2 * l.AlienW)
	rows = (l.FieldH - 3*l.AlienH - l.ShipH) / (2 * l.AlienH)
	return max(cols, 0), max(rows, 0)
}

// CreateFleet places one alien per grid cell, row by row, with IDs
// starting at firstID.
func CreateFleet(l Layout, firstID int) []Alien {
	cols, rows := l.GridSize()
	aliens := make([]Alien, 0, cols*rows)

	id := firstID
	for row := range rows {
		for col := range cols {
			a := Alien{ID: id}
			a.W, a.H = l.AlienW, l.AlienH
			a.X = float64(l.AlienW + 2*l.AlienW*col)
			a.Y = float64(l.AlienH + 2*l.AlienH*row)
			aliens = append(aliens, a)
			id++
		}
	}
	return aliens
}

// Fleet owns the live aliens and the direction they march in.
type Fleet struct {
	layout    Layout
	aliens    []Alien
	direction int
	nextID    int
}

// NewFleet creates an empty fleet marching right.
func NewFleet(l Layout) *Fleet {
	return &Fleet{layout: l, direction: 1}
}

// Spawn replaces the current aliens with a full grid.
func (f *Fleet) Spawn() {
	f.aliens = CreateFleet(f.layout, f.nextID)
	f.nextID += len(f.aliens)
}

// Capacity returns the number of aliens in a full grid.
func (f *Fleet) Capacity() int {
	cols, rows := f.layout.GridSize()
	return cols * rows
}

// Clear removes every alien. The direction is kept.
func (f *Fleet) Clear() {
	f.aliens = f.aliens[:0]
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

// Aliens returns the live aliens. Callers must not modify it.
func (f *Fleet) Aliens() []Alien {
	return f.aliens
}

// Direction returns +1 when marching right and -1 when marching left.
func (f *Fleet) Direction() int {
	return f.direction
}

// ResetDirection makes the fleet march right again. Only a new game does this;
// respawns and level-ups keep the current direction.
func (f *Fleet) ResetDirection() {
	f.direction = 1
}

// Advance moves every alien horizontally by speed in the fleet direction.
func (f *Fleet) Advance(speed float64) {
	for i := range f.aliens {
		f.aliens[i].Update(speed, f.direction)
	}
}

// CheckEdges reports whether any alien touches a side of the field.
func (f *Fleet) CheckEdges() bool {
	for _, a := range f.aliens {
		if a.AtEdge(f.layout.FieldW) {
			return true
		}
	}
	return false
}

// ReverseDirection drops every alien by dropSpeed and flips the direction.
func (f *Fleet) ReverseDirection(dropSpeed float64) {
	for i := range f.aliens {
		f.aliens[i].Move(0, dropSpeed)
	}
	f.direction = -f.direction
}

// Update runs one fleet tick: bounce off an edge if needed, then march.
// Returns true if the fleet reversed this tick.
func (f *Fleet) Update(speed, dropSpeed float64) bool {
	reversed := false
	if f.CheckEdges() {
		f.ReverseDirection(dropSpeed)
		reversed = true
	}
	f.Advance(speed)
	return reversed
}

// ReachedBottom reports whether any alien's bottom edge reached the field bottom.
func (f *Fleet) ReachedBottom() bool {
	for _, a := range f.aliens {
		if a.Rect().Bottom() >= f.layout.FieldH {
			return true
		}
	}
	return false
}

// Collides reports whether any alien overlaps r.
func (f *Fleet) Collides(r core.Rect) bool {
	for _, a := range f.aliens {
		if a.Rect().Intersects(r) {
			return true
		}
	}
	return false
}

// Remove deletes the aliens with the given IDs and returns how many were removed.
func (f *Fleet) Remove(ids []int) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := f.aliens[:0]
	for _, a := range f.aliens {
		if !drop[a.ID] {
			kept = append(kept, a)
		}
	}
	removed := len(f.aliens) - len(kept)
	f.aliens = kept
	return removed
}
