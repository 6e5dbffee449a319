package commands

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/domain"
	"github.com/benZhai01/vstest/internal/engine"
	"github.com/benZhai01/vstest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	engine    *engine.Engine
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, eng *engine.Engine, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		engine:    eng,
		formatter: formatter,
	}
}

// collectingEvents gathers every discovered case for listing
type collectingEvents struct {
	mu    sync.Mutex
	cases []*domain.TestCase
}

func (c *collectingEvents) OnDiscoveredTests(batch []*domain.TestCase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cases = append(c.cases, batch...)
}

func (c *collectingEvents) OnWarning(message string) {
	color.Yellow("%s", message)
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	sources := lc.config.GetSources()
	if len(sources) == 0 {
		return fmt.Errorf("no test sources were provided")
	}

	events := &collectingEvents{}
	if err := lc.engine.DiscoverTests(cmd.Context(), sources, nil, events); err != nil {
		return err
	}

	if len(events.cases) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTestList(events.cases, lc.config.Flags.TestCases)
	return nil
}
