package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/cli"
	"github.com/example/ladder/internal/db"
	"github.com/example/ladder/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ladder",
		Short:   "ladder - career matrix for engineering levels",
		Version: version.String(),
		Long: `ladder manages a career-level matrix: job levels across the top,
evaluation criteria grouped by category down the side, and the expected
behavior for each pair in the cells.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.MatrixCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.OverviewCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Entity commands
	rootCmd.AddCommand(cli.LevelCmd())
	rootCmd.AddCommand(cli.CriterionCmd())
	rootCmd.AddCommand(cli.CapabilityCmd())

	err := rootCmd.Execute()
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
