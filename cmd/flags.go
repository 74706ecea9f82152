package cmd

import (
	"path"

	"github.com/zeu5/tabular-rl/util"
)

type Flags struct {
	SavePath string

	EnvFlags
	AgentFlags
	RunFlags
}

type EnvFlags struct {
	Env         string
	ChainLength int
	GridRows    int
	GridCols    int
}

type AgentFlags struct {
	Strategy   string
	Alpha      float64
	Gamma      float64
	MaxEpsilon float64
	MinEpsilon float64
	C          float64
	Seed       uint64
}

type RunFlags struct {
	NumRuns     int
	Episodes    int
	MaxSteps    int
	Parallelism int
	Verbose     bool
}

func DefaultFlags() *Flags {
	return &Flags{
		SavePath: "results",
		EnvFlags: EnvFlags{
			Env:         "chain",
			ChainLength: 10,
			GridRows:    4,
			GridCols:    4,
		},
		AgentFlags: AgentFlags{
			Strategy:   "UCB",
			Alpha:      0.1,
			Gamma:      0.9,
			MaxEpsilon: 1.0,
			MinEpsilon: 0.02,
			C:          1.0,
		},
		RunFlags: RunFlags{
			NumRuns:     1,
			Episodes:    200,
			MaxSteps:    100,
			Parallelism: 2,
			Verbose:     false,
		},
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
