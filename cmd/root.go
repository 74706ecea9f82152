package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/tabular-rl/agent"
	"github.com/zeu5/tabular-rl/core"
	"github.com/zeu5/tabular-rl/env"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabular-rl",
		Short: "Train and compare tabular SARSA agents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		TrainCommand(),
		CompareCommand(),
	)

	return cmd
}

func agentConfig(f *Flags) agent.Config {
	return agent.Config{
		Strategy:   agent.Strategy(f.Strategy),
		Alpha:      f.Alpha,
		Gamma:      f.Gamma,
		MaxEpsilon: f.MaxEpsilon,
		MinEpsilon: f.MinEpsilon,
		C:          f.C,
		Seed:       f.Seed,
	}
}

func newEnvironment(f *Flags) (core.EnvironmentConstructor, error) {
	switch f.Env {
	case "chain":
		return &env.ChainConstructor{Length: f.ChainLength}, nil
	case "grid":
		return &env.GridWorldConstructor{Rows: f.GridRows, Cols: f.GridCols}, nil
	default:
		return nil, fmt.Errorf("unknown environment %q: must be chain or grid", f.Env)
	}
}
