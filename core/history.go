package core

import "time"

// Episode is the record of one completed training episode.
type Episode struct {
	Steps    int
	Reward   float64
	Duration time.Duration
}

// History accumulates per-episode records over a training run. It is
// append-only and owned by the trainer that produced it.
type History struct {
	episodes []Episode
}

func NewHistory() *History {
	return &History{
		episodes: make([]Episode, 0),
	}
}

func (h *History) Add(e Episode) {
	h.episodes = append(h.episodes, e)
}

func (h *History) Len() int {
	return len(h.episodes)
}

func (h *History) Episode(i int) Episode {
	return h.episodes[i]
}

// Steps returns the per-episode step counts.
func (h *History) Steps() []int {
	out := make([]int, len(h.episodes))
	for i, e := range h.episodes {
		out[i] = e.Steps
	}
	return out
}

// Rewards returns the per-episode cumulative rewards.
func (h *History) Rewards() []float64 {
	out := make([]float64, len(h.episodes))
	for i, e := range h.episodes {
		out[i] = e.Reward
	}
	return out
}

// Durations returns the per-episode wall-clock durations.
func (h *History) Durations() []time.Duration {
	out := make([]time.Duration, len(h.episodes))
	for i, e := range h.episodes {
		out[i] = e.Duration
	}
	return out
}
