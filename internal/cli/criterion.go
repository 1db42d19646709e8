package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

var criterionCmd = &cobra.Command{
	Use:   "criterion",
	Short: "Manage evaluation criteria",
}

var criterionAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Add a new criterion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		subCategory, _ := cmd.Flags().GetString("sub-category")

		if category == "" || subCategory == "" {
			return fmt.Errorf("--category and --sub-category are required")
		}

		return wire.AdminAdapter().AddCriterion(cmd.Context(), primary.CreateCriterionRequest{
			ID:          args[0],
			Category:    category,
			SubCategory: subCategory,
		})
	},
}

var criterionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List criteria grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MatrixAdapter().ListCriteria(cmd.Context())
	},
}

// CriterionCmd returns the criterion command.
func CriterionCmd() *cobra.Command {
	criterionAddCmd.Flags().StringP("category", "c", "", "Top-level category, e.g. \"Craft\"")
	criterionAddCmd.Flags().String("sub-category", "", "Sub-category, e.g. \"Quality\"")

	criterionCmd.AddCommand(criterionAddCmd)
	criterionCmd.AddCommand(criterionListCmd)

	return criterionCmd
}
