package experiment

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gosuri/uilive"

	"github.com/zeu5/tabular-rl/agent"
	"github.com/zeu5/tabular-rl/core"
)

// Result is the outcome of one training run of one experiment.
type Result struct {
	ExperimentName string
	Run            int
	History        *core.History
	Err            error
	Datasets       map[string]DataSet
}

func (r *Result) IsError() bool {
	return r.Err != nil
}

// worker consumes training runs off a work channel.
type worker struct {
	id int
}

type work struct {
	experiment *Experiment
	comp       *Comparison
	run        int
	config     *RunConfig
	writer     io.Writer
}

func (w *worker) run(ctx context.Context, workCh <-chan *work, resultsCh chan<- *Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case wk, more := <-workCh:
			if !more {
				return
			}
			resultsCh <- w.runWork(wk)
		}
	}
}

// runWork constructs a fresh agent and environment, trains, and applies the
// registered analyzers to the resulting history.
func (w *worker) runWork(wk *work) *Result {
	result := &Result{
		ExperimentName: wk.experiment.Name,
		Run:            wk.run,
		Datasets:       make(map[string]DataSet),
	}

	config := wk.experiment.Agent
	config.Output = wk.writer
	a, err := agent.New(config)
	if err != nil {
		result.Err = err
		return result
	}
	env := wk.experiment.Environment.NewEnvironment(w.id)

	fmt.Fprintf(wk.writer, "Experiment: %s, Run %d, %s\n", wk.experiment.Name, wk.run, a)
	history, err := a.Train(env, wk.config.Episodes, wk.config.MaxSteps, wk.config.Verbose)
	if err != nil {
		result.Err = err
		return result
	}
	result.History = history

	for name, ac := range wk.comp.Analyzers {
		analyzer := ac.NewAnalyzer(w.id)
		analyzer.Analyze(wk.run, history)
		result.Datasets[name] = analyzer.DataSet()
	}
	return result
}

// Run executes every experiment of the comparison runs times, distributing
// the training runs over a pool of parallelism workers with live per-worker
// progress lines, then hands the gathered datasets to the comparators.
// Each individual training run stays synchronous; cancellation applies
// between runs and between experiments only.
func (c *Comparison) Run(ctx context.Context, runs int, config *RunConfig, parallelism int) {
	for run := 0; run < runs; run++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		writer := uilive.New()
		writer.Start()
		fmt.Fprintf(writer, "Run %d\n", run)

		workCh := make(chan *work, parallelism)
		resultsCh := make(chan *Result, parallelism)

		wg := new(sync.WaitGroup)
		for i := 0; i < parallelism; i++ {
			w := &worker{id: i}
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.run(ctx, workCh, resultsCh)
			}()
		}

		results := make(map[string]*Result)
		collected := make(chan struct{})
		go func() {
			defer close(collected)
			for result := range resultsCh {
				results[result.ExperimentName] = result
			}
		}()

	SendLoop:
		for _, e := range c.Experiments {
			select {
			case <-ctx.Done():
				break SendLoop
			case workCh <- &work{
				experiment: e,
				comp:       c,
				run:        run,
				config:     config,
				writer:     writer.Newline(),
			}:
			}
		}
		close(workCh)

		wg.Wait()
		close(resultsCh)
		<-collected
		writer.Stop()

		select {
		case <-ctx.Done():
			return
		default:
		}

		// Datasets are handed over in experiment order; failed or
		// cancelled runs leave a nil slot.
		datasets := make(map[string][]DataSet)
		names := make([]string, 0, len(c.Experiments))
		for _, e := range c.Experiments {
			names = append(names, e.Name)
			result := results[e.Name]
			for aName := range c.Analyzers {
				if result == nil || result.IsError() {
					datasets[aName] = append(datasets[aName], nil)
				} else {
					datasets[aName] = append(datasets[aName], result.Datasets[aName])
				}
			}
		}
		for name, cc := range c.Comparators {
			cc.NewComparator(run).Compare(names, datasets[name])
		}
	}
}
