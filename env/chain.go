// Package env provides small deterministic environments used by the CLI
// and the tests. They implement core.Environment and nothing more: reward
// shaping and scenario modelling belong to external collaborators.
package env

import (
	"fmt"
	"strconv"

	"github.com/zeu5/tabular-rl/core"
)

// move is a named step direction shared by the built-in environments.
type move string

func (m move) Hash() string {
	return string(m)
}

const (
	moveLeft  move = "left"
	moveRight move = "right"
	moveUp    move = "up"
	moveDown  move = "down"
)

type chainState int

func (s chainState) Hash() string {
	return strconv.Itoa(int(s))
}

// Chain is a corridor of Length cells. The agent starts at cell 0 and
// walks left or right; reaching the last cell ends the episode with
// GoalReward. Every other step costs StepPenalty. Walking left off cell 0
// is a wasted step.
type Chain struct {
	Length      int
	GoalReward  float64
	StepPenalty float64

	position int
}

var _ core.Environment = &Chain{}

func NewChain(length int) *Chain {
	return &Chain{
		Length:      length,
		GoalReward:  1.0,
		StepPenalty: 0.01,
	}
}

func (c *Chain) Reset() (core.State, error) {
	c.position = 0
	return chainState(c.position), nil
}

func (c *Chain) Step(action core.Action) (core.State, float64, bool, error) {
	switch action.Hash() {
	case string(moveLeft):
		if c.position > 0 {
			c.position--
		}
	case string(moveRight):
		c.position++
	default:
		return nil, 0, false, fmt.Errorf("chain: unknown action %q", action.Hash())
	}
	if c.position == c.Length-1 {
		return chainState(c.position), c.GoalReward, true, nil
	}
	return chainState(c.position), -c.StepPenalty, false, nil
}

func (c *Chain) ActionSpace() []core.Action {
	return []core.Action{moveLeft, moveRight}
}

// ChainConstructor builds independent Chain instances for parallel runs.
type ChainConstructor struct {
	Length int
}

var _ core.EnvironmentConstructor = &ChainConstructor{}

func (c *ChainConstructor) NewEnvironment(_ int) core.Environment {
	return NewChain(c.Length)
}
