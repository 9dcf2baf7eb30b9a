package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's ship. It only moves horizontally.
type Ship struct {
	core.Body
	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship of the given size at the origin.
func NewShip(w, h int) *Ship {
	return &Ship{Body: core.Body{W: w, H: h}}
}

// Center places the ship's bottom-middle on the field's bottom-middle.
func (s *Ship) Center(fieldW, fieldH int) {
	s.X = float64(fieldW/2 - s.W/2)
	s.Y = float64(fieldH - s.H)
}

// Update moves the ship according to its movement flags. Both bounds are
// tested against the position at the start of the tick.
func (s *Ship) Update(speed float64, fieldW int) {
	r := s.Rect()
	if s.MovingRight && r.Right() < fieldW {
		s.X += speed
	}
	if s.MovingLeft && r.X > 0 {
		s.X -= speed
	}
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	ID int
	core.Body
}

// Update moves the bullet up by speed.
func (b *Bullet) Update(speed float64) {
	b.Move(0, -speed)
}

// Gone reports whether the bullet has left the top of the field.
func (b Bullet) Gone() bool {
	return b.Rect().Bottom() <= 0
}

// Alien is a single member of the fleet.
type Alien struct {
	ID int
	core.Body
}

// Update moves the alien horizontally in the fleet direction.
func (a *Alien) Update(speed float64, direction int) {
	a.Move(speed*float64(direction), 0)
}

// AtEdge reports whether the alien touches or crosses a side of the field.
func (a Alien) AtEdge(fieldW int) bool {
	r := a.Rect()
	return r.Right() >= fieldW || r.X <= 0
}
