package cmd

import (
	"fmt"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeu5/tabular-rl/agent"
	"github.com/zeu5/tabular-rl/core"
	"github.com/zeu5/tabular-rl/util"
)

// historyArtifact is the JSON shape of a saved training run.
type historyArtifact struct {
	Steps       []int
	Rewards     []float64
	DurationsMs []float64
}

func newHistoryArtifact(h *core.History) *historyArtifact {
	durations := make([]float64, h.Len())
	for i, d := range h.Durations() {
		durations[i] = float64(d) / float64(time.Millisecond)
	}
	return &historyArtifact{
		Steps:       h.Steps(),
		Rewards:     h.Rewards(),
		DurationsMs: durations,
	}
}

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a single SARSA agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := agent.New(agentConfig(flags))
			if err != nil {
				return err
			}
			constructor, err := newEnvironment(flags)
			if err != nil {
				return err
			}
			environment := constructor.NewEnvironment(0)

			fmt.Println(a)
			history, err := a.Train(environment, flags.Episodes, flags.MaxSteps, true)
			if err != nil {
				return err
			}

			fmt.Printf("Trained on %d episodes, %d states visited\n", history.Len(), a.States())
			return util.SaveJson(path.Join(flags.SavePath, "train.json"), newHistoryArtifact(history))
		},
	}
	return cmd
}
