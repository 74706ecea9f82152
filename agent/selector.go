package agent

import (
	"math"

	erand "golang.org/x/exp/rand"
)

// A selector picks the next action index for a state. param is the
// exploration hyperparameter of the strategy: epsilon for epsilon-greedy,
// c for UCB. A zero param degrades either strategy to greedy selection.
type selector interface {
	pick(q *QTable, n *NTable, state string, size int, param float64) int
}

type egreedySelector struct {
	rand *erand.Rand
}

var _ selector = &egreedySelector{}

func (s *egreedySelector) pick(q *QTable, _ *NTable, state string, size int, epsilon float64) int {
	if s.rand.Float64() < epsilon {
		return s.rand.Intn(size)
	}
	return argmaxFirst(q.Values(state, size))
}

type ucbSelector struct{}

var _ selector = &ucbSelector{}

func (s *ucbSelector) pick(q *QTable, n *NTable, state string, size int, c float64) int {
	counts := n.Counts(state, size)
	// Every action is tried once before any value comparison. This also
	// keeps the log/division below well-defined.
	for i, v := range counts {
		if v == 0 {
			return i
		}
	}

	total := 0
	for _, v := range counts {
		total += v
	}
	logTotal := math.Log(float64(total))

	values := q.Values(state, size)
	adjusted := make([]float64, size)
	for i := range adjusted {
		adjusted[i] = values[i] + c*math.Sqrt(2*logTotal/float64(counts[i]))
	}
	return argmaxFirst(adjusted)
}

// argmaxFirst returns the index of the maximum entry, keeping the lowest
// index on ties: only a strictly greater value displaces the current best.
func argmaxFirst(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
