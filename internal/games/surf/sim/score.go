package sim

// Scorer accumulates points for tricks and grinding.
// The score only ever grows during a run.
type Scorer struct {
	points     int
	tricks     int
	grindTicks int
}

// AddTrick records one completed trick.
func (s *Scorer) AddTrick(points int) {
	s.points += points
	s.tricks++
}

// AddGrind records one tick spent grinding.
func (s *Scorer) AddGrind(points int) {
	s.points += points
	s.grindTicks++
}

// Score returns the current total.
func (s *Scorer) Score() int { return s.points }

// Stats returns the run statistics.
func (s *Scorer) Stats() Stats {
	return Stats{TricksLanded: s.tricks, GrindTicks: s.grindTicks}
}

// Reset zeroes the scorer.
func (s *Scorer) Reset() { *s = Scorer{} }

// Stats are per-run counters reported alongside the score.
type Stats struct {
	TricksLanded int
	GrindTicks   int
}
