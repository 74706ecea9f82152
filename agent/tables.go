package agent

// QTable maps state hashes to fixed-length action-value vectors. A state's
// vector is zero-filled on first touch, sized to the action-space length
// seen at that point. The length is fixed afterwards: revisiting a state
// with a different action-space length is undefined behaviour.
type QTable struct {
	table map[string][]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string][]float64),
	}
}

// Values returns the value vector for state, creating a zero vector of the
// given size if the state has not been seen before.
func (q *QTable) Values(state string, size int) []float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make([]float64, size)
	}
	return q.table[state]
}

// Value returns a single state-action value.
func (q *QTable) Value(state string, size, action int) float64 {
	return q.Values(state, size)[action]
}

// Set overwrites a single entry. The state's vector must already exist.
func (q *QTable) Set(state string, action int, val float64) {
	q.table[state][action] = val
}

func (q *QTable) Clear() {
	q.table = make(map[string][]float64)
}

// Size returns the number of states with an allocated vector.
func (q *QTable) Size() int {
	return len(q.table)
}

// NTable maps state hashes to per-action visit counts, with the same lazy
// zero-fill and fixed-length semantics as QTable. Counts only ever grow
// within a training run.
type NTable struct {
	table map[string][]int
}

func NewNTable() *NTable {
	return &NTable{
		table: make(map[string][]int),
	}
}

// Counts returns the visit-count vector for state, creating a zero vector
// of the given size if the state has not been seen before.
func (n *NTable) Counts(state string, size int) []int {
	if _, ok := n.table[state]; !ok {
		n.table[state] = make([]int, size)
	}
	return n.table[state]
}

// Count returns the visit count of a single state-action pair.
func (n *NTable) Count(state string, size, action int) int {
	return n.Counts(state, size)[action]
}

// Increment adds one visit to a state-action pair.
func (n *NTable) Increment(state string, size, action int) {
	n.Counts(state, size)[action]++
}

func (n *NTable) Clear() {
	n.table = make(map[string][]int)
}

func (n *NTable) Size() int {
	return len(n.table)
}
