package agent

import (
	"fmt"
	"io"
	"os"
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/tabular-rl/core"
)

// Strategy names an exploration scheme. The set is closed: a SarsaAgent is
// constructed with exactly one of the values below and keeps it for life.
type Strategy string

const (
	StrategyUCB     Strategy = "UCB"
	StrategyEGreedy Strategy = "egreedy"
)

// Config holds the agent hyperparameters. Only Strategy is validated at
// construction; out-of-range numeric values are the caller's responsibility
// and produce unstable learning rather than an error.
type Config struct {
	Strategy Strategy

	Alpha float64 // SARSA step size
	Gamma float64 // discount factor

	MaxEpsilon float64 // initial epsilon (epsilon-greedy)
	MinEpsilon float64 // final epsilon (epsilon-greedy)
	C          float64 // exploration bonus coefficient (UCB)

	Seed   uint64    // random seed; 0 seeds from the wall clock
	Output io.Writer // verbose progress target; nil means os.Stdout
}

// DefaultConfig returns the stock UCB configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:   StrategyUCB,
		Alpha:      0.1,
		Gamma:      0.9,
		MaxEpsilon: 1.0,
		MinEpsilon: 0.02,
		C:          1.0,
	}
}

// SarsaAgent learns a tabular policy with the on-policy SARSA update,
// exploring with either UCB or epsilon-greedy action selection. It is not
// safe for concurrent use: a single agent owns its tables exclusively.
type SarsaAgent struct {
	config   Config
	qTable   *QTable
	nTable   *NTable
	selector selector
	out      io.Writer
}

// New creates an agent from config. It fails only if the strategy is not
// one of StrategyUCB, StrategyEGreedy.
func New(config Config) (*SarsaAgent, error) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	a := &SarsaAgent{
		config: config,
		qTable: NewQTable(),
		nTable: NewNTable(),
		out:    out,
	}
	switch config.Strategy {
	case StrategyUCB:
		a.selector = &ucbSelector{}
	case StrategyEGreedy:
		a.selector = &egreedySelector{rand: newRand(config.Seed)}
	default:
		return nil, fmt.Errorf("unknown strategy %q: must be %q or %q", config.Strategy, StrategyUCB, StrategyEGreedy)
	}
	return a, nil
}

func newRand(seed uint64) *erand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return erand.New(erand.NewSource(seed))
}

// Train runs numEpisodes episodes of at most maxSteps steps each against
// env, learning on-policy as it goes. The environment's action space is
// read once and assumed stable for the whole run. Environment errors abort
// training and propagate unmodified, together with the history collected so
// far. With verbose set, progress is reported every numEpisodes/10
// episodes.
func (a *SarsaAgent) Train(env core.Environment, numEpisodes, maxSteps int, verbose bool) (*core.History, error) {
	if verbose {
		fmt.Fprintf(a.out, "Sarsa %s agent: starting training for %d episodes\n", a.config.Strategy, numEpisodes)
	}

	space := env.ActionSpace()

	param := a.config.C
	if a.config.Strategy == StrategyEGreedy {
		param = a.config.MaxEpsilon
	}

	history := core.NewHistory()
	reportEvery := numEpisodes / 10
	for e := 0; e < numEpisodes; e++ {
		start := time.Now()
		steps, reward, err := a.runEpisode(env, space, maxSteps, param)
		if err != nil {
			return history, err
		}
		history.Add(core.Episode{Steps: steps, Reward: reward, Duration: time.Since(start)})

		// Slowly decrease exploration. UCB's c stays constant.
		if a.config.Strategy == StrategyEGreedy {
			param = a.decayEpsilon(numEpisodes, e)
		}

		if verbose && reportEvery > 0 && (e+1)%reportEvery == 0 {
			fmt.Fprintf(a.out, "Sarsa %s agent: episode %d/%d, steps=%d, reward=%.3f\n",
				a.config.Strategy, e+1, numEpisodes, steps, reward)
		}
	}

	if verbose {
		fmt.Fprintf(a.out, "Sarsa %s agent: training complete after %d episodes\n", a.config.Strategy, numEpisodes)
	}
	return history, nil
}

func (a *SarsaAgent) runEpisode(env core.Environment, space []core.Action, maxSteps int, param float64) (int, float64, error) {
	size := len(space)

	s, err := env.Reset()
	if err != nil {
		return 0, 0, err
	}
	state := s.Hash()
	action := a.selector.pick(a.qTable, a.nTable, state, size, param)

	steps := 0
	reward := 0.0
	for i := 0; i < maxSteps; i++ {
		a.nTable.Increment(state, size, action)

		next, r, done, err := env.Step(space[action])
		if err != nil {
			return steps, reward, err
		}
		nextState := next.Hash()
		nextAction := a.selector.pick(a.qTable, a.nTable, nextState, size, param)

		a.update(state, action, nextState, nextAction, r, size)

		state, action = nextState, nextAction
		reward += r
		steps++
		if done {
			break
		}
	}
	return steps, reward, nil
}

// update applies the SARSA rule. The target uses the action the policy
// actually takes next, not the greedy maximum: that is what makes the
// update on-policy.
func (a *SarsaAgent) update(state string, action int, nextState string, nextAction int, reward float64, size int) {
	currentQ := a.qTable.Value(state, size, action)
	nextQ := a.qTable.Value(nextState, size, nextAction)
	tdError := reward + a.config.Gamma*nextQ - currentQ
	a.qTable.Set(state, action, currentQ+a.config.Alpha*tdError)
}

// decayEpsilon computes the epsilon for the episode after the just-finished
// episode index: a linear ramp from MaxEpsilon down towards MinEpsilon over
// the run.
func (a *SarsaAgent) decayEpsilon(numEpisodes, episode int) float64 {
	step := (a.config.MaxEpsilon - a.config.MinEpsilon) / float64(numEpisodes)
	return a.config.MaxEpsilon - step*float64(episode)
}

// Reset discards everything the agent has learned. A reset agent with the
// same seed behaves identically to a freshly constructed one.
func (a *SarsaAgent) Reset() {
	a.qTable = NewQTable()
	a.nTable = NewNTable()
	if a.config.Strategy == StrategyEGreedy {
		a.selector = &egreedySelector{rand: newRand(a.config.Seed)}
	}
}

// GreedyAction returns the best known action index for state, breaking ties
// towards the lowest index. Used for evaluation after training.
func (a *SarsaAgent) GreedyAction(state core.State, space []core.Action) int {
	return argmaxFirst(a.qTable.Values(state.Hash(), len(space)))
}

// States reports how many distinct states the agent holds values for.
func (a *SarsaAgent) States() int {
	return a.qTable.Size()
}

func (a *SarsaAgent) String() string {
	if a.config.Strategy == StrategyUCB {
		return fmt.Sprintf("UCB: alpha=%v, gamma=%v, c=%v", a.config.Alpha, a.config.Gamma, a.config.C)
	}
	return fmt.Sprintf("e-Greedy: alpha=%v, gamma=%v, max-epsilon=%v, min-epsilon=%v",
		a.config.Alpha, a.config.Gamma, a.config.MaxEpsilon, a.config.MinEpsilon)
}
