// Package experiment runs repeated independent training runs and compares
// exploration strategies against each other.
package experiment

import (
	"github.com/zeu5/tabular-rl/agent"
	"github.com/zeu5/tabular-rl/core"
)

// Experiment pairs an agent configuration with an environment family. Each
// run constructs a fresh agent and a fresh environment.
type Experiment struct {
	Name        string
	Environment core.EnvironmentConstructor
	Agent       agent.Config
}

type DataSet interface{}

// Analyzer consumes the history of one training run and distils it into a
// dataset for comparison.
type Analyzer interface {
	Analyze(run int, history *core.History)
	DataSet() DataSet
	Reset()
}

// AnalyzerConstructor builds a fresh analyzer for the given worker.
type AnalyzerConstructor interface {
	NewAnalyzer(worker int) Analyzer
}

// Comparator receives one dataset per experiment, in experiment order. A
// nil entry marks a run that failed.
type Comparator interface {
	Compare(names []string, datasets []DataSet)
}

// ComparatorConstructor builds a fresh comparator for the given run.
type ComparatorConstructor interface {
	NewComparator(run int) Comparator
}

// RunConfig bounds each training run.
type RunConfig struct {
	Episodes int
	MaxSteps int
	Verbose  bool
}

// Comparison holds the experiments to run side by side and the analyses to
// apply to each run.
type Comparison struct {
	Experiments []*Experiment
	Analyzers   map[string]AnalyzerConstructor
	Comparators map[string]ComparatorConstructor
}

func NewComparison() *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		Analyzers:   make(map[string]AnalyzerConstructor),
		Comparators: make(map[string]ComparatorConstructor),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a AnalyzerConstructor, cmp ComparatorConstructor) {
	c.Analyzers[name] = a
	c.Comparators[name] = cmp
}
