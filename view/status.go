package view

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/gol-sim/model"
	"github.com/sheikhrachel/gol-sim/utils"
)

// Status follows the snapshots a consumer reads and describes them in one line
type Status struct {
	stats   *utils.Stats
	history *model.History

	seen       bool
	generation int
}

func NewStatus(historySize int) *Status {
	return &Status{
		stats:   utils.NewStats(),
		history: model.NewHistory(historySize),
	}
}

// Observe feeds a snapshot read at time at. Snapshots of an already seen
// generation are skipped.
func (st *Status) Observe(s model.Snapshot, at time.Time) {
	if s.Current == nil {
		return
	}
	if st.seen && s.Generation == st.generation {
		return
	}
	if s.Generation < st.generation {
		st.history.Reset()
	}
	st.seen = true
	st.generation = s.Generation
	st.history.Observe(s.Current)
	st.stats.Observe(s.Generation, s.Current.Population(), at)
}

// Line renders the status of s
func (st *Status) Line(s model.Snapshot) string {
	if s.Current == nil {
		return "Waiting for the simulation..."
	}

	living := s.Current.Population()
	density := float64(living) / float64(s.Current.Width()*s.Current.Height()) * 100

	status := "Stopped"
	if s.Running {
		status = "Running"
	}
	switch {
	case living == 0:
		status += ", extinct"
	case st.history.Stagnant():
		status += ", stagnant"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		s.Generation, living, density, status, st.stats.GenerationsPerSecond)
}
