package experiment

import (
	"fmt"
	"path"

	"gonum.org/v1/gonum/stat"

	"github.com/zeu5/tabular-rl/core"
	"github.com/zeu5/tabular-rl/util"
)

type returnDataset struct {
	Run     int
	Rewards []float64
}

func (d *returnDataset) Copy() *returnDataset {
	return &returnDataset{
		Run:     d.Run,
		Rewards: util.CopyFloatSlice(d.Rewards),
	}
}

// ReturnAnalyzer records the per-episode returns of a run.
type ReturnAnalyzer struct {
	dataset *returnDataset
}

var _ Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{
		dataset: &returnDataset{Rewards: make([]float64, 0)},
	}
}

func (a *ReturnAnalyzer) Reset() {
	a.dataset = &returnDataset{Rewards: make([]float64, 0)}
}

func (a *ReturnAnalyzer) Analyze(run int, history *core.History) {
	a.dataset.Run = run
	a.dataset.Rewards = append(a.dataset.Rewards, history.Rewards()...)
}

func (a *ReturnAnalyzer) DataSet() DataSet {
	return a.dataset.Copy()
}

type ReturnAnalyzerConstructor struct{}

var _ AnalyzerConstructor = &ReturnAnalyzerConstructor{}

func (*ReturnAnalyzerConstructor) NewAnalyzer(_ int) Analyzer {
	return NewReturnAnalyzer()
}

type lengthDataset struct {
	Run   int
	Steps []int
}

func (d *lengthDataset) Copy() *lengthDataset {
	return &lengthDataset{
		Run:   d.Run,
		Steps: util.CopyIntSlice(d.Steps),
	}
}

// EpisodeLengthAnalyzer records the per-episode step counts of a run.
type EpisodeLengthAnalyzer struct {
	dataset *lengthDataset
}

var _ Analyzer = &EpisodeLengthAnalyzer{}

func NewEpisodeLengthAnalyzer() *EpisodeLengthAnalyzer {
	return &EpisodeLengthAnalyzer{
		dataset: &lengthDataset{Steps: make([]int, 0)},
	}
}

func (a *EpisodeLengthAnalyzer) Reset() {
	a.dataset = &lengthDataset{Steps: make([]int, 0)}
}

func (a *EpisodeLengthAnalyzer) Analyze(run int, history *core.History) {
	a.dataset.Run = run
	a.dataset.Steps = append(a.dataset.Steps, history.Steps()...)
}

func (a *EpisodeLengthAnalyzer) DataSet() DataSet {
	return a.dataset.Copy()
}

type EpisodeLengthAnalyzerConstructor struct{}

var _ AnalyzerConstructor = &EpisodeLengthAnalyzerConstructor{}

func (*EpisodeLengthAnalyzerConstructor) NewAnalyzer(_ int) Analyzer {
	return NewEpisodeLengthAnalyzer()
}

// Summary condenses the tail window of one experiment's returns.
type Summary struct {
	Experiment string
	Episodes   int
	Window     int
	MeanReturn float64
	StdReturn  float64
}

// SummaryComparator summarises the final stretch of per-episode returns of
// each experiment with mean and standard deviation and saves the result as
// JSON under savePath.
type SummaryComparator struct {
	run      int
	window   int
	savePath string
}

var _ Comparator = &SummaryComparator{}

func NewSummaryComparator(run, window int, savePath string) *SummaryComparator {
	return &SummaryComparator{
		run:      run,
		window:   window,
		savePath: savePath,
	}
}

func (c *SummaryComparator) Compare(names []string, datasets []DataSet) {
	summaries := make([]Summary, 0, len(names))
	for i, name := range names {
		d, ok := datasets[i].(*returnDataset)
		if !ok || d == nil || len(d.Rewards) == 0 {
			continue
		}
		window := c.window
		if window <= 0 || window > len(d.Rewards) {
			window = len(d.Rewards)
		}
		tail := d.Rewards[len(d.Rewards)-window:]
		mean, std := stat.MeanStdDev(tail, nil)
		summaries = append(summaries, Summary{
			Experiment: name,
			Episodes:   len(d.Rewards),
			Window:     window,
			MeanReturn: mean,
			StdReturn:  std,
		})
	}
	util.SaveJson(path.Join(c.savePath, fmt.Sprintf("summary_%d.json", c.run)), summaries)
}

type SummaryComparatorConstructor struct {
	Window   int
	SavePath string
}

var _ ComparatorConstructor = &SummaryComparatorConstructor{}

func (c *SummaryComparatorConstructor) NewComparator(run int) Comparator {
	return NewSummaryComparator(run, c.Window, c.SavePath)
}

// NoOpComparator discards the datasets handed to it.
type NoOpComparator struct{}

var _ Comparator = &NoOpComparator{}

func (*NoOpComparator) Compare(_ []string, _ []DataSet) {}

type NoOpComparatorConstructor struct{}

var _ ComparatorConstructor = &NoOpComparatorConstructor{}

func (*NoOpComparatorConstructor) NewComparator(_ int) Comparator {
	return &NoOpComparator{}
}
