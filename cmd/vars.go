package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flags *Flags = DefaultFlags()

	savePath    string
	envName     string
	chainLength int
	gridRows    int
	gridCols    int

	strategy   string
	alpha      float64
	gamma      float64
	maxEpsilon float64
	minEpsilon float64
	ucbC       float64
	seed       uint64

	numRuns     int
	episodes    int
	maxSteps    int
	parallelism int
	verbose     bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().StringVar(&envName, "env", flags.Env, "Environment to train against (chain|grid)")
	cmd.PersistentFlags().IntVar(&chainLength, "chain-length", flags.ChainLength, "Number of cells in the chain environment")
	cmd.PersistentFlags().IntVar(&gridRows, "grid-rows", flags.GridRows, "Rows of the gridworld environment")
	cmd.PersistentFlags().IntVar(&gridCols, "grid-cols", flags.GridCols, "Columns of the gridworld environment")

	cmd.PersistentFlags().StringVar(&strategy, "strategy", flags.Strategy, "Exploration strategy (UCB|egreedy)")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", flags.Alpha, "SARSA step size")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", flags.Gamma, "Discount factor")
	cmd.PersistentFlags().Float64Var(&maxEpsilon, "max-epsilon", flags.MaxEpsilon, "Initial epsilon (egreedy)")
	cmd.PersistentFlags().Float64Var(&minEpsilon, "min-epsilon", flags.MinEpsilon, "Final epsilon (egreedy)")
	cmd.PersistentFlags().Float64Var(&ucbC, "c", flags.C, "Exploration bonus coefficient (UCB)")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Random seed, 0 seeds from the wall clock")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of independent runs")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes per run")
	cmd.PersistentFlags().IntVar(&maxSteps, "max-steps", flags.MaxSteps, "Maximum steps per episode")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel training runs")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", flags.Verbose, "Report per-episode progress")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Env = envName
	flags.ChainLength = chainLength
	flags.GridRows = gridRows
	flags.GridCols = gridCols

	flags.Strategy = strategy
	flags.Alpha = alpha
	flags.Gamma = gamma
	flags.MaxEpsilon = maxEpsilon
	flags.MinEpsilon = minEpsilon
	flags.C = ucbC
	flags.Seed = seed

	flags.NumRuns = numRuns
	flags.Episodes = episodes
	flags.MaxSteps = maxSteps
	flags.Parallelism = parallelism
	flags.Verbose = verbose
}
