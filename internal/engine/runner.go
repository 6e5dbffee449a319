package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/domain"
)

// Runner executes the selected cases of a single test file through PHPUnit
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes PHPUnit for one test file, restricted to the given methods
func (r *Runner) Run(ctx context.Context, settings *domain.RunSettings, file string, methods []string, workerID int) domain.TestResult {
	args := []string{}
	if settings != nil && settings.Path != "" {
		args = append(args, "--configuration", settings.Path)
	}
	args = append(args, "--filter", methodFilter(methods), file)

	cmd := exec.CommandContext(ctx, r.config.GetAdapterPath(), args...)
	cmd.Dir = r.config.ProjectPath
	cmd.Env = append(os.Environ(), fmt.Sprintf("DB_DATABASE=%s", r.config.WorkerDatabase(workerID)))

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.TestResult{
		File:     file,
		Methods:  methods,
		Success:  err == nil,
		Output:   string(output),
		Err:      err,
		Duration: time.Since(start),
	}
}

// methodFilter builds the PHPUnit --filter regex matching exactly the given
// method names.
func methodFilter(methods []string) string {
	quoted := make([]string, 0, len(methods))
	for _, method := range methods {
		quoted = append(quoted, regexp.QuoteMeta(method))
	}
	return "^(" + strings.Join(quoted, "|") + ")$"
}
