package core

import (
	"testing"
	"time"
)

func TestHistoryParallelSequences(t *testing.T) {
	h := NewHistory()
	h.Add(Episode{Steps: 3, Reward: 1.5, Duration: 2 * time.Millisecond})
	h.Add(Episode{Steps: 7, Reward: -0.5, Duration: 5 * time.Millisecond})

	if h.Len() != 2 {
		t.Fatalf("expected 2 episodes, got %d", h.Len())
	}

	steps := h.Steps()
	rewards := h.Rewards()
	durations := h.Durations()
	if steps[0] != 3 || steps[1] != 7 {
		t.Errorf("unexpected steps: %v", steps)
	}
	if rewards[0] != 1.5 || rewards[1] != -0.5 {
		t.Errorf("unexpected rewards: %v", rewards)
	}
	if durations[0] != 2*time.Millisecond || durations[1] != 5*time.Millisecond {
		t.Errorf("unexpected durations: %v", durations)
	}

	if e := h.Episode(1); e.Steps != 7 {
		t.Errorf("unexpected episode record: %+v", e)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if h.Len() != 0 || len(h.Steps()) != 0 || len(h.Rewards()) != 0 {
		t.Error("expected empty history")
	}
}
