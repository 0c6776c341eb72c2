package debugui

// history is a fixed-size ring of samples for ImGui plots.
type history struct {
	samples []float32
	index   int
	filled  int
}

func newHistory(size int) *history {
	return &history{samples: make([]float32, size)}
}

func (h *history) push(v float32) {
	h.samples[h.index] = v
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// average returns the mean of the samples pushed so far.
func (h *history) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:h.filled] {
		sum += v
	}
	return sum / float32(h.filled)
}
