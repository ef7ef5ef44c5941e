package harness

import (
	"context"
	"sync"
	"time"

	"bth/internal/domain"
	"bth/internal/ui"
)

// Pool runs whole suites in parallel across a fixed number of workers.
// Tests inside a suite stay sequential so suite-internal ordering is
// deterministic.
type Pool struct {
	workers  int
	runner   *Runner
	progress *ui.ProgressBar
}

// NewPool creates a Pool with the given worker count.
func NewPool(workers int, runner *Runner) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, runner: runner}
}

// SetProgress sets the progress bar updated as tests complete.
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs all suites to completion.
func (p *Pool) Execute(suites []Suite) ([]domain.SuiteResult, time.Duration, error) {
	return p.ExecuteWithOptions(suites, false)
}

// ExecuteWithOptions runs suites with optional fail-fast: when set, no new
// suite is dispatched after the first suite with a failure.
func (p *Pool) ExecuteWithOptions(suites []Suite, failFast bool) ([]domain.SuiteResult, time.Duration, error) {
	if len(suites) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return p.executeAll(suites)
	}
	return p.executeFailFast(suites)
}

func (p *Pool) executeAll(suites []Suite) ([]domain.SuiteResult, time.Duration, error) {
	queue := make(chan Suite, len(suites))
	results := make(chan domain.SuiteResult, len(suites))
	for _, s := range suites {
		queue <- s
	}
	close(queue)

	var mu sync.Mutex
	var completedTests, passedTests, failedTests int
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 1; i <= p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for suite := range queue {
				result := p.runner.RunSuite(suite)
				results <- result
				mu.Lock()
				passed, failed := result.Counts()
				completedTests += len(result.Results)
				passedTests += passed
				failedTests += failed
				if p.progress != nil {
					p.progress.Update(completedTests, passedTests, failedTests)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []domain.SuiteResult
	for result := range results {
		all = append(all, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return all, time.Since(startTime), nil
}

func (p *Pool) executeFailFast(suites []Suite) ([]domain.SuiteResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan Suite, 1)
	results := make(chan domain.SuiteResult, len(suites))

	go func() {
		defer close(queue)
		for _, s := range suites {
			select {
			case <-ctx.Done():
				return
			case queue <- s:
			}
		}
	}()

	var mu sync.Mutex
	var completedTests, passedTests, failedTests int
	var seenFailure bool
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 1; i <= p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for suite := range queue {
				result := p.runner.RunSuite(suite)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				passed, failed := result.Counts()
				completedTests += len(result.Results)
				passedTests += passed
				failedTests += failed
				if p.progress != nil {
					p.progress.Update(completedTests, passedTests, failedTests)
				}
				if failed > 0 {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []domain.SuiteResult
	for result := range results {
		all = append(all, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return all, time.Since(startTime), nil
}
