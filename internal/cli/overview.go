package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
	"github.com/example/ladder/internal/wire"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the matrix goals and principles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MatrixAdapter().ShowOverview(cmd.Context())
	},
}

var overviewAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add an overview goal or principle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentType, _ := cmd.Flags().GetString("type")
		order, _ := cmd.Flags().GetInt("order")

		if contentType != secondary.OverviewTypeGoal && contentType != secondary.OverviewTypePrinciple {
			return fmt.Errorf("--type must be %q or %q", secondary.OverviewTypeGoal, secondary.OverviewTypePrinciple)
		}
		if order <= 0 {
			return fmt.Errorf("--order must be a positive display rank")
		}

		return wire.AdminAdapter().AddOverviewContent(cmd.Context(), primary.CreateOverviewContentRequest{
			Type:    contentType,
			Content: args[0],
			Order:   order,
		})
	},
}

// OverviewCmd returns the overview command.
func OverviewCmd() *cobra.Command {
	overviewAddCmd.Flags().StringP("type", "t", "", "Content type: goal or principle")
	overviewAddCmd.Flags().IntP("order", "o", 0, "Display rank within the overview")

	overviewCmd.AddCommand(overviewAddCmd)

	return overviewCmd
}
