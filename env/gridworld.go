package env

import (
	"fmt"

	"github.com/zeu5/tabular-rl/core"
)

type gridState struct {
	row, col int
}

func (s gridState) Hash() string {
	return fmt.Sprintf("%d,%d", s.row, s.col)
}

// GridWorld is a Rows x Cols board. The agent starts in the top-left
// corner and moves in the four cardinal directions; moves into a wall keep
// it in place but still cost a step. Reaching the bottom-right corner ends
// the episode with GoalReward.
type GridWorld struct {
	Rows        int
	Cols        int
	GoalReward  float64
	StepPenalty float64

	row, col int
}

var _ core.Environment = &GridWorld{}

func NewGridWorld(rows, cols int) *GridWorld {
	return &GridWorld{
		Rows:        rows,
		Cols:        cols,
		GoalReward:  1.0,
		StepPenalty: 0.01,
	}
}

func (g *GridWorld) Reset() (core.State, error) {
	g.row, g.col = 0, 0
	return gridState{g.row, g.col}, nil
}

func (g *GridWorld) Step(action core.Action) (core.State, float64, bool, error) {
	switch action.Hash() {
	case string(moveUp):
		if g.row > 0 {
			g.row--
		}
	case string(moveDown):
		if g.row < g.Rows-1 {
			g.row++
		}
	case string(moveLeft):
		if g.col > 0 {
			g.col--
		}
	case string(moveRight):
		if g.col < g.Cols-1 {
			g.col++
		}
	default:
		return nil, 0, false, fmt.Errorf("gridworld: unknown action %q", action.Hash())
	}
	if g.row == g.Rows-1 && g.col == g.Cols-1 {
		return gridState{g.row, g.col}, g.GoalReward, true, nil
	}
	return gridState{g.row, g.col}, -g.StepPenalty, false, nil
}

func (g *GridWorld) ActionSpace() []core.Action {
	return []core.Action{moveUp, moveDown, moveLeft, moveRight}
}

// GridWorldConstructor builds independent GridWorld instances for parallel
// runs.
type GridWorldConstructor struct {
	Rows, Cols int
}

var _ core.EnvironmentConstructor = &GridWorldConstructor{}

func (g *GridWorldConstructor) NewEnvironment(_ int) core.Environment {
	return NewGridWorld(g.Rows, g.Cols)
}
