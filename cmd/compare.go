package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zeu5/tabular-rl/agent"
	"github.com/zeu5/tabular-rl/experiment"
)

func CompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare UCB and epsilon-greedy exploration side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				<-sigCh
				cancel()
			}()

			constructor, err := newEnvironment(flags)
			if err != nil {
				return err
			}

			ucbConfig := agentConfig(flags)
			ucbConfig.Strategy = agent.StrategyUCB
			egreedyConfig := agentConfig(flags)
			egreedyConfig.Strategy = agent.StrategyEGreedy

			cmp := experiment.NewComparison()
			cmp.AddExperiment(&experiment.Experiment{
				Name:        "ucb",
				Environment: constructor,
				Agent:       ucbConfig,
			})
			cmp.AddExperiment(&experiment.Experiment{
				Name:        "egreedy",
				Environment: constructor,
				Agent:       egreedyConfig,
			})
			cmp.AddAnalysis(
				"returns",
				&experiment.ReturnAnalyzerConstructor{},
				&experiment.SummaryComparatorConstructor{Window: 50, SavePath: flags.SavePath},
			)
			cmp.AddAnalysis(
				"lengths",
				&experiment.EpisodeLengthAnalyzerConstructor{},
				&experiment.NoOpComparatorConstructor{},
			)

			cmp.Run(ctx, flags.NumRuns, &experiment.RunConfig{
				Episodes: flags.Episodes,
				MaxSteps: flags.MaxSteps,
				Verbose:  flags.Verbose,
			}, flags.Parallelism)
			return nil
		},
	}
	return cmd
}
