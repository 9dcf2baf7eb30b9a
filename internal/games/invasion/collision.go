package invasion

import "sort"

// HitReport is the outcome of one bullet-alien resolution pass.
type HitReport struct {
	// ByBullet maps a bullet ID to the IDs of the aliens credited to it.
	ByBullet map[int][]int
	// Aliens lists every alien destroyed, in credit order.
	Aliens []int
	// Spent lists bullets to remove. Always empty for piercing bullets.
	Spent []int
}

// Destroyed returns the number of aliens destroyed in the pass.
func (r HitReport) Destroyed() int {
	return len(r.Aliens)
}

// ResolveBulletHits finds every bullet-alien overlap at the current positions.
//
// Bullets are examined in ID order. Each bullet is credited with every alien
// it overlaps that no earlier bullet already claimed in this pass, so an
// alien is never scored twice. A non-piercing bullet with at least one hit is
// spent; a piercing bullet survives and can hit again on later ticks.
func ResolveBulletHits(bullets []Bullet, aliens []Alien, piercing bool) HitReport {
	report := HitReport{ByBullet: make(map[int][]int)}
	if len(bullets) == 0 || len(aliens) == 0 {
		return report
	}

	ordered := make([]Bullet, len(bullets))
	copy(ordered, bullets)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	claimed := make(map[int]bool)
	for _, b := range ordered {
		br := b.Rect()
		for _, a := range aliens {
			if claimed[a.ID] || !br.Intersects(a.Rect()) {
				continue
			}
			claimed[a.ID] = true
			report.ByBullet[b.ID] = append(report.ByBullet[b.ID], a.ID)
			report.Aliens = append(report.Aliens, a.ID)
		}
		if !piercing && len(report.ByBullet[b.ID]) > 0 {
			report.Spent = append(report.Spent, b.ID)
		}
	}
	return report
}
