package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benZhai01/vstest/internal/domain"
	"github.com/benZhai01/vstest/internal/selection"
	"github.com/benZhai01/vstest/internal/ui"
)

// fileGroup is the unit of work for the run pool: one test file with the
// selected methods to execute in it.
type fileGroup struct {
	file    string
	methods []string
}

// RunTests executes the selected test cases through a worker pool, one
// PHPUnit invocation per test file, persists the results and prints the
// summary. The request's settings and filter are passed through untouched.
func (e *Engine) RunTests(ctx context.Context, req selection.RunRequest) error {
	if len(req.TestCases) == 0 {
		return nil
	}

	groups := groupByFile(req.TestCases)

	queue := make(chan fileGroup, len(groups))
	results := make(chan domain.TestResult, len(groups))
	for _, group := range groups {
		queue <- group
	}
	close(queue)

	var mu sync.Mutex
	var completed, passedCases, failedCases int
	progress := ui.NewProgressBar(len(groups))
	startTime := time.Now()

	workerCount := e.cfg.Processors
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(groups) {
		workerCount = len(groups)
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for group := range queue {
				if ctx.Err() != nil {
					return
				}
				result := e.runner.Run(ctx, req.Settings, group.file, group.methods, workerID)
				results <- result

				mu.Lock()
				completed++
				p, f := e.output.ParseTestCounts(result)
				passedCases += p
				failedCases += f
				progress.Update(completed, passedCases, failedCases)
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.TestResult
	for result := range results {
		allResults = append(allResults, result)
	}
	progress.Finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	var failures []domain.TestFailure
	for _, result := range allResults {
		if !result.Success {
			failures = append(failures, e.output.ParseFailures(result)...)
		}
	}

	summary := buildSummary(len(req.TestCases), allResults, failures, time.Since(startTime), workerCount)
	if err := e.store.Save(summary); err != nil {
		return fmt.Errorf("save run results: %w", err)
	}
	e.formatter.PrintSummary(summary)
	return nil
}

// groupByFile groups selected cases by their test file, preserving selection order
func groupByFile(testCases []*domain.TestCase) []fileGroup {
	index := make(map[string]int)
	var groups []fileGroup
	for _, tc := range testCases {
		if i, ok := index[tc.File]; ok {
			groups[i].methods = append(groups[i].methods, tc.Method)
			continue
		}
		index[tc.File] = len(groups)
		groups = append(groups, fileGroup{file: tc.File, methods: []string{tc.Method}})
	}
	return groups
}

func buildSummary(selected int, results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int) *domain.RunSummary {
	passed, failed := 0, 0
	parser := NewOutputParser()
	for _, result := range results {
		p, f := parser.ParseTestCounts(result)
		passed += p
		failed += f
	}

	return &domain.RunSummary{
		Meta: domain.RunMeta{
			SelectedTestCases: selected,
			TestFiles:         len(results),
			PassedTestCases:   passed,
			FailedTestCases:   failed,
			Duration:          duration.String(),
			DurationSeconds:   duration.Seconds(),
			Workers:           workers,
			Timestamp:         time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
}
