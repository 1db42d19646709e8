package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "Manage capability cells",
}

var capabilityAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a capability for a (level, criterion) pair",
	Long: `Add the expected behavior text for one cell of the matrix. The
referenced job level and criterion must already exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		criterion, _ := cmd.Flags().GetString("criterion")

		if level == "" || criterion == "" {
			return fmt.Errorf("--level and --criterion are required")
		}

		return wire.AdminAdapter().AddCapability(cmd.Context(), primary.CreateCapabilityRequest{
			JobLevelID:  level,
			CriterionID: criterion,
			Description: args[0],
		})
	},
}

// CapabilityCmd returns the capability command.
func CapabilityCmd() *cobra.Command {
	capabilityAddCmd.Flags().StringP("level", "l", "", "Job level id, e.g. \"l3\"")
	capabilityAddCmd.Flags().StringP("criterion", "c", "", "Criterion id, e.g. \"craft-quality\"")

	capabilityCmd.AddCommand(capabilityAddCmd)

	return capabilityCmd
}
