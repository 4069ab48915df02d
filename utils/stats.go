package utils

import "time"

// Stats tracks simulation throughput as seen by a consumer
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	lastGeneration int
	lastTime       time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records the generation and population seen at time at. Repeated
// calls for the same generation are ignored, a lower generation (after a
// reset) restarts the measurement.
func (s *Stats) Observe(generation int, population int, at time.Time) {
	if s.lastTime.IsZero() || generation < s.lastGeneration {
		s.lastGeneration = generation
		s.lastTime = at
		s.TotalGenerations = generation
		s.AveragePopulation = float64(population)
		s.GenerationsPerSecond = 0
		return
	}
	if generation == s.lastGeneration {
		return
	}

	if elapsed := at.Sub(s.lastTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation-s.lastGeneration) / elapsed.Seconds()
	}
	s.lastGeneration = generation
	s.lastTime = at
	s.TotalGenerations = generation

	// Simple moving average for population
	s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
}
