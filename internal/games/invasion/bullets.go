package invasion

// Bullets owns the live bullets. Bullets are addressed by ID so removal
// never depends on slice position.
type Bullets struct {
	items  []Bullet
	nextID int
	w, h   int
}

// NewBullets creates an empty bullet set for bullets of the given size.
func NewBullets(w, h int) *Bullets {
	return &Bullets{w: w, h: h}
}

// Fire spawns a bullet at the ship's mid-top unless limit bullets are
// already live. It reports whether a bullet was created.
func (b *Bullets) Fire(ship *Ship, limit int) bool {
	if len(b.items) >= limit {
		return false
	}

	r := ship.Rect()
	centerX, _ := r.Center()
	bullet := Bullet{ID: b.nextID}
	bullet.W, bullet.H = b.w, b.h
	bullet.X = float64(centerX - b.w/2)
	bullet.Y = float64(r.Y)

	b.nextID++
	b.items = append(b.items, bullet)
	return true
}

// Update advances every bullet and drops those that left the field.
// Returns the number of bullets dropped.
func (b *Bullets) Update(speed float64) int {
	kept := b.items[:0]
	for _, bullet := range b.items {
		bullet.Update(speed)
		if bullet.Gone() {
			continue
		}
		kept = append(kept, bullet)
	}
	dropped := len(b.items) - len(kept)
	b.items = kept
	return dropped
}

// Remove deletes the bullets with the given IDs.
func (b *Bullets) Remove(ids []int) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := b.items[:0]
	for _, bullet := range b.items {
		if !drop[bullet.ID] {
			kept = append(kept, bullet)
		}
	}
	b.items = kept
}

// Clear removes every bullet.
func (b *Bullets) Clear() {
	b.items = b.items[:0]
}

// Len returns the number of live bullets.
func (b *Bullets) Len() int {
	return len(b.items)
}

// Items returns the live bullets in firing order. Callers must not modify it.
func (b *Bullets) Items() []Bullet {
	return b.items
}
