package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Manage job levels",
}

var levelAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Add a new job level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		title, _ := cmd.Flags().GetString("title")
		summary, _ := cmd.Flags().GetString("summary")
		trajectory, _ := cmd.Flags().GetString("trajectory")

		if name == "" {
			return fmt.Errorf("--name is required")
		}

		return wire.AdminAdapter().AddJobLevel(cmd.Context(), primary.CreateJobLevelRequest{
			ID:                 args[0],
			Name:               name,
			PrimaryTitle:       title,
			DescriptionSummary: summary,
			TrajectoryNote:     trajectory,
		})
	},
}

var levelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MatrixAdapter().ListLevels(cmd.Context())
	},
}

// LevelCmd returns the level command.
func LevelCmd() *cobra.Command {
	levelAddCmd.Flags().StringP("name", "n", "", "Display name, e.g. \"L3\"")
	levelAddCmd.Flags().StringP("title", "t", "", "Primary role title, e.g. \"Software Engineer\"")
	levelAddCmd.Flags().StringP("summary", "s", "", "One-line description of the level")
	levelAddCmd.Flags().String("trajectory", "", "Optional note on where this level leads")

	levelCmd.AddCommand(levelAddCmd)
	levelCmd.AddCommand(levelListCmd)

	return levelCmd
}
