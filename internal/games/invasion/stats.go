package invasion

// Stats tracks lives, score and level for the current game and the high
// score for the lifetime of the process.
type Stats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int
	Active    bool
	Paused    bool
}

// Reset prepares the stats for a new game. The high score is kept.
func (s *Stats) Reset(shipLimit int) {
	s.ShipsLeft = shipLimit
	s.Score = 0
	s.Level = 1
}

// AddScore adds points and raises the high score if it was beaten.
func (s *Stats) AddScore(points int) {
	s.Score += points
	s.checkHighScore()
}

// SeedHighScore raises the high score to at least best.
func (s *Stats) SeedHighScore(best int) {
	if best > s.HighScore {
		s.HighScore = best
	}
}

func (s *Stats) checkHighScore() {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// LoseShip removes one ship, never going below zero, and returns the
// number of ships left.
func (s *Stats) LoseShip() int {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	return s.ShipsLeft
}
