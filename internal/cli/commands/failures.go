package commands

import (
	"github.com/spf13/cobra"

	"github.com/benZhai01/vstest/internal/storage"
	"github.com/benZhai01/vstest/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(st storage.Storage, viewer *ui.FailureViewer) *FailuresCommand {
	return &FailuresCommand{storage: st, viewer: viewer}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := fc.storage.Load()
	if err != nil {
		return err
	}
	return fc.viewer.View(summary)
}
