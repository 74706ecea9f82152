package agent

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/zeu5/tabular-rl/core"
)

type banditState struct{}

func (banditState) Hash() string { return "s" }

type banditAction int

func (a banditAction) Hash() string { return strconv.Itoa(int(a)) }

// banditEnv is a one-state environment whose actions pay fixed rewards and
// end the episode immediately.
type banditEnv struct {
	rewards []float64
}

var _ core.Environment = &banditEnv{}

func (b *banditEnv) Reset() (core.State, error) {
	return banditState{}, nil
}

func (b *banditEnv) Step(a core.Action) (core.State, float64, bool, error) {
	i, err := strconv.Atoi(a.Hash())
	if err != nil {
		return nil, 0, false, err
	}
	return banditState{}, b.rewards[i], true, nil
}

func (b *banditEnv) ActionSpace() []core.Action {
	space := make([]core.Action, len(b.rewards))
	for i := range b.rewards {
		space[i] = banditAction(i)
	}
	return space
}

var errStep = errors.New("step failed")

type failingEnv struct{}

var _ core.Environment = &failingEnv{}

func (failingEnv) Reset() (core.State, error) { return banditState{}, nil }

func (failingEnv) Step(core.Action) (core.State, float64, bool, error) {
	return nil, 0, false, errStep
}

func (failingEnv) ActionSpace() []core.Action {
	return []core.Action{banditAction(0), banditAction(1)}
}

func ucbTestConfig() Config {
	return Config{
		Strategy: StrategyUCB,
		Alpha:    0.5,
		Gamma:    0.0,
		C:        1.0,
		Output:   io.Discard,
	}
}

func egreedyTestConfig(seed uint64) Config {
	return Config{
		Strategy:   StrategyEGreedy,
		Alpha:      0.5,
		Gamma:      0.0,
		MaxEpsilon: 1.0,
		MinEpsilon: 0.0,
		Seed:       seed,
		Output:     io.Discard,
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	_, err := New(Config{Strategy: "softmax"})
	if err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}

func TestSarsaUpdateArithmetic(t *testing.T) {
	a, err := New(Config{Strategy: StrategyEGreedy, Alpha: 0.1, Gamma: 0.5, Output: io.Discard})
	if err != nil {
		t.Fatal(err)
	}

	a.qTable.Values("s", 2)
	a.qTable.Set("s", 0, 2.0)
	a.qTable.Values("t", 2)
	a.qTable.Set("t", 0, 4.0)

	a.update("s", 0, "t", 0, 1.0, 2)

	got := a.qTable.Value("s", 2, 0)
	if math.Abs(got-2.1) > 1e-9 {
		t.Errorf("expected Q(s,a)=2.1 after update, got %f", got)
	}
	// The next state's value is a target, never an update.
	if next := a.qTable.Value("t", 2, 0); next != 4.0 {
		t.Errorf("expected Q(s',a') untouched at 4.0, got %f", next)
	}
}

func TestEpsilonDecayLaw(t *testing.T) {
	a, err := New(egreedyTestConfig(1))
	if err != nil {
		t.Fatal(err)
	}

	for e := 0; e < 10; e++ {
		got := a.decayEpsilon(10, e)
		want := 1.0 - float64(e)/10.0
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("episode %d: epsilon %f, want %f", e, got, want)
		}
	}
}

func TestUCBConvergesToBetterArm(t *testing.T) {
	a, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	environment := &banditEnv{rewards: []float64{1.0, 5.0}}

	history, err := a.Train(environment, 50, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if history.Len() != 50 {
		t.Fatalf("expected 50 episodes, got %d", history.Len())
	}

	if got := a.GreedyAction(banditState{}, environment.ActionSpace()); got != 1 {
		t.Errorf("expected greedy action 1, got %d", got)
	}
	values := a.qTable.Values("s", 2)
	if values[1] <= values[0] {
		t.Errorf("expected Q[1] > Q[0], got %v", values)
	}
}

func TestVisitCountGrowth(t *testing.T) {
	a, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	environment := &banditEnv{rewards: []float64{0.0, 0.0}}

	const episodes = 20
	if _, err := a.Train(environment, episodes, 1, false); err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, c := range a.nTable.Counts("s", 2) {
		total += c
	}
	if total != episodes {
		t.Errorf("expected %d total visits, got %d", episodes, total)
	}
}

func TestResetIdempotence(t *testing.T) {
	environment := &banditEnv{rewards: []float64{1.0, 5.0}}

	a, err := New(egreedyTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Train(environment, 20, 1, false); err != nil {
		t.Fatal(err)
	}
	a.Reset()
	if a.States() != 0 {
		t.Fatalf("expected empty tables after reset, got %d states", a.States())
	}
	afterReset, err := a.Train(environment, 20, 1, false)
	if err != nil {
		t.Fatal(err)
	}

	fresh, err := New(egreedyTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	fromFresh, err := fresh.Train(environment, 20, 1, false)
	if err != nil {
		t.Fatal(err)
	}

	// Rewards identify the chosen actions in this environment, so equal
	// reward sequences mean identical behaviour.
	got, want := afterReset.Rewards(), fromFresh.Rewards()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("episode %d: reset agent diverged from fresh agent: %f vs %f", i, got[i], want[i])
		}
	}
}

func TestTrainPropagatesEnvironmentError(t *testing.T) {
	a, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}

	_, err = a.Train(failingEnv{}, 10, 5, false)
	if !errors.Is(err, errStep) {
		t.Errorf("expected the environment error unmodified, got %v", err)
	}
}

func TestGreedyActionTieBreaksLowestIndex(t *testing.T) {
	a, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	environment := &banditEnv{rewards: []float64{0.0, 0.0, 0.0}}

	if got := a.GreedyAction(banditState{}, environment.ActionSpace()); got != 0 {
		t.Errorf("expected tie-break to 0 on an untrained agent, got %d", got)
	}
}

func TestStringSummaries(t *testing.T) {
	ucb, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	if s := ucb.String(); !strings.Contains(s, "UCB") || !strings.Contains(s, "c=") {
		t.Errorf("unexpected UCB summary: %q", s)
	}

	egreedy, err := New(egreedyTestConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	if s := egreedy.String(); !strings.Contains(s, "e-Greedy") || !strings.Contains(s, "epsilon") {
		t.Errorf("unexpected e-Greedy summary: %q", s)
	}
}

func TestTrainZeroEpisodes(t *testing.T) {
	a, err := New(ucbTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	history, err := a.Train(&banditEnv{rewards: []float64{0.0, 0.0}}, 0, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if history.Len() != 0 {
		t.Errorf("expected empty history, got %d episodes", history.Len())
	}
}
