package model

// Snapshot is a copy of the simulation state handed to consumers.
// Previous is the board that was current right before the last tick.
// The boards are shared by every reader of the same snapshot and must be
// treated as read-only; use Clone before modifying them.
type Snapshot struct {
	Running    bool
	Generation int
	Current    *Board
	Previous   *Board
}

// Clone deep copies both boards
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Current != nil {
		out.Current = s.Current.Clone()
	}
	if s.Previous != nil {
		out.Previous = s.Previous.Clone()
	}
	return out
}
