package engine

import (
	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/storage"
	"github.com/benZhai01/vstest/internal/ui"
)

// Engine implements the discovery and run collaborators consumed by the
// selection pipeline: it scans source roots for PHPUnit test cases and
// executes selected cases through a worker pool.
type Engine struct {
	cfg       *config.Config
	scanner   *Scanner
	cases     *CaseParser
	runner    *Runner
	output    *OutputParser
	store     storage.Storage
	formatter *ui.Formatter
}

// New creates an Engine wired to the given configuration, result storage and
// output formatter.
func New(cfg *config.Config, store storage.Storage, formatter *ui.Formatter) *Engine {
	return &Engine{
		cfg:       cfg,
		scanner:   NewScanner(cfg.PathsToIgnore),
		cases:     NewCaseParser(),
		runner:    NewRunner(cfg),
		output:    NewOutputParser(),
		store:     store,
		formatter: formatter,
	}
}
