package model

const defaultHistorySize = 5

// History keeps the hashes of the last few boards seen so a consumer can tell
// when the simulation has settled into a still life or a short cycle.
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history of the given depth, size <= 0 uses 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Observe records b. Repeated observations of the same generation should be
// filtered by the caller.
func (h *History) Observe(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether the newest board repeats one of the (up to) three
// before it, which covers still lifes and period 2 and 3 oscillators.
func (h *History) Stagnant() bool {
	n := len(h.hashes)
	if n < 2 {
		return false
	}
	latest := h.hashes[n-1]
	for i := n - 2; i >= max(0, n-4); i-- {
		if h.hashes[i] == latest {
			return true
		}
	}
	return false
}

// Reset forgets every observation
func (h *History) Reset() {
	h.hashes = nil
}
