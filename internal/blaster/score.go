package blaster

// ScoreTracker accumulates points and bonus-ball grants across a run.
type ScoreTracker struct {
	score       int
	destroyed   int
	bonusGrants int
}

// Apply records a hit result and returns true if a bonus ball was earned.
func (s *ScoreTracker) Apply(result HitResult) bool {
	if !result.Destroyed {
		return false
	}
	s.score += result.Points
	s.destroyed++
	if result.GrantsBonus {
		s.bonusGrants++
		return true
	}
	return false
}

// AddLevelBonus awards flat points for clearing a level.
func (s *ScoreTracker) AddLevelBonus(points int) {
	s.score += points
}

// Score returns the accumulated score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Destroyed returns the total number of bricks destroyed.
func (s *ScoreTracker) Destroyed() int {
	return s.destroyed
}

// BonusGrants returns how many extra balls were earned.
func (s *ScoreTracker) BonusGrants() int {
	return s.bonusGrants
}

// Reset clears all counters.
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.destroyed = 0
	s.bonusGrants = 0
}
