package dbprep

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/benZhai01/vstest/internal/config"
)

// Preparer sets up the isolated test databases the run workers use: it
// ensures each worker's database exists and runs the configured prepare
// command (e.g. a migration) once per worker in parallel.
type Preparer struct {
	config  *config.Config
	manager *DatabaseManager
}

// NewPreparer creates a new Preparer
func NewPreparer(cfg *config.Config, manager *DatabaseManager) *Preparer {
	return &Preparer{config: cfg, manager: manager}
}

// prepareResult holds the outcome of preparing one worker database
type prepareResult struct {
	workerID int
	err      error
	output   string
}

// Run prepares databases for the given number of workers
func (p *Preparer) Run(ctx context.Context, workerCount int) error {
	if p.config.PrepareCommand == "" {
		return fmt.Errorf("no prepare_command configured")
	}

	workers, err := p.manager.EnsureDatabases(workerCount)
	if err != nil {
		return fmt.Errorf("ensure databases: %w", err)
	}

	color.White("Preparing %d worker database(s)\n", len(workers))

	bar := progressbar.NewOptions(len(workers),
		progressbar.OptionSetDescription(color.CyanString("Preparing: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	var wg sync.WaitGroup
	results := make(chan prepareResult, len(workers))
	for _, workerID := range workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results <- p.prepareWorker(ctx, id)
			bar.Add(1)
		}(workerID)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var failed []prepareResult
	for result := range results {
		if result.err != nil {
			failed = append(failed, result)
		}
	}
	bar.Finish()

	if len(failed) > 0 {
		for _, result := range failed {
			color.Red("worker %d: %v", result.workerID, result.err)
		}
		return fmt.Errorf("preparing failed for %d worker(s)", len(failed))
	}
	color.Green("✓ All worker databases prepared")
	return nil
}

// prepareWorker runs the prepare command against one worker's database
func (p *Preparer) prepareWorker(ctx context.Context, workerID int) prepareResult {
	parts := strings.Fields(p.config.PrepareCommand)
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = p.config.ProjectPath
	cmd.Env = append(os.Environ(), fmt.Sprintf("DB_DATABASE=%s", p.config.WorkerDatabase(workerID)))

	output, err := cmd.CombinedOutput()
	return prepareResult{workerID: workerID, err: err, output: string(output)}
}
