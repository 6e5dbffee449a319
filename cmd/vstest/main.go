package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/benZhai01/vstest/internal/cli"
	"github.com/benZhai01/vstest/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "vstest",
		Short:   "Selective PHPUnit test execution by name",
		Long:    `Discover PHPUnit tests across source directories and selectively execute the ones matching user-supplied test name fragments, in parallel.`,
		Version: version,
	}

	var flags cli.Flags
	commands.Register(rootCmd, &flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
