package commands

import (
	"github.com/spf13/cobra"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/dbprep"
	"github.com/benZhai01/vstest/internal/engine"
	"github.com/benZhai01/vstest/internal/selection"
	"github.com/benZhai01/vstest/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	engine   *engine.Engine
	preparer *dbprep.Preparer
	console  *ui.Console
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, eng *engine.Engine, preparer *dbprep.Preparer, console *ui.Console) *RunCommand {
	return &RunCommand{
		config:   cfg,
		engine:   eng,
		preparer: preparer,
		console:  console,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if rc.config.Flags.Prepare {
		if err := rc.preparer.Run(ctx, rc.config.Processors); err != nil {
			return err
		}
	}

	orch := selection.NewOrchestrator(rc.engine, rc.engine, rc.config, rc.console)
	return orch.Run(ctx, selection.Options{
		Argument:          rc.config.Flags.Tests,
		Sources:           rc.config.GetSources(),
		TestCaseFilter:    rc.config.Flags.Filter,
		AdapterConfigured: rc.config.AdapterConfigured(),
	})
}
