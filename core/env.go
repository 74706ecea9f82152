package core

// State is an opaque observation produced by an environment. Hash must be
// stable and value-comparable: two states with the same hash are the same
// state. The agent never inspects a state beyond its hash.
type State interface {
	Hash() string
}

// Action is a single action token. The agent addresses actions by their
// zero-based index in the environment's action space; Hash identifies the
// action for reporting.
type Action interface {
	Hash() string
}

// Environment is the collaborator an agent trains against. Reset and Step
// block until complete. ActionSpace returns the ordered set of actions,
// which must stay stable for the duration of a training run: the length of
// the space sizes the agent's per-state value and count vectors.
type Environment interface {
	Reset() (State, error)
	Step(Action) (State, float64, bool, error)
	ActionSpace() []Action
}

// EnvironmentConstructor creates a fresh environment instance for the given
// worker number.
type EnvironmentConstructor interface {
	NewEnvironment(int) Environment
}
