package sim

import "math/rand"

// MinSpawnInterval is the hard floor, in ticks, below which no level table
// can push the spawn interval. Roughly 600ms at 60 ticks/second.
const MinSpawnInterval = 36

// SpawnSpec is one weighted catalog entry. Make builds a fresh entity;
// the spawner fills in the ID.
type SpawnSpec struct {
	Weight int
	Make   func(rng *rand.Rand) Entity
}

// Spawner generates new entities at a configurable interval, drawing kinds
// from a weighted catalog. Intervals shrink as levels advance but are
// clamped so the rate never becomes degenerate.
type Spawner struct {
	rng         *rand.Rand
	catalog     []SpawnSpec
	totalWeight int
	interval    int // Ticks between spawns
	sinceLast   int
}

// NewSpawner creates a spawner over the given catalog.
func NewSpawner(rng *rand.Rand, catalog []SpawnSpec, interval int) *Spawner {
	total := 0
	for _, spec := range catalog {
		total += spec.Weight
	}
	s := &Spawner{
		rng:         rng,
		catalog:     catalog,
		totalWeight: total,
	}
	s.SetInterval(interval)
	return s
}

// SetInterval updates the spawn interval, clamped at MinSpawnInterval.
func (s *Spawner) SetInterval(ticks int) {
	if ticks < MinSpawnInterval {
		ticks = MinSpawnInterval
	}
	s.interval = ticks
}

// Interval returns the current effective spawn interval in ticks.
func (s *Spawner) Interval() int {
	return s.interval
}

// Reset clears the time-since-last-spawn counter.
func (s *Spawner) Reset() {
	s.sinceLast = 0
}

// Advance counts one tick and, when the interval has elapsed, draws one
// entity from the catalog. Returns nil on non-spawning ticks.
func (s *Spawner) Advance() *Entity {
	s.sinceLast++
	if s.sinceLast < s.interval || len(s.catalog) == 0 {
		return nil
	}
	s.sinceLast = 0

	e := s.draw()
	return &e
}

// draw picks a catalog entry by weight and builds its entity.
func (s *Spawner) draw() Entity {
	roll := s.rng.Intn(s.totalWeight)
	for _, spec := range s.catalog {
		roll -= spec.Weight
		if roll < 0 {
			return spec.Make(s.rng)
		}
	}
	// Unreachable while weights are positive; keep the last entry as a
	// safe default.
	return s.catalog[len(s.catalog)-1].Make(s.rng)
}
