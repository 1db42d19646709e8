package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

// MatrixCmd returns the matrix command.
func MatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the career matrix grid",
		Long: `Render the career matrix as a grid: criteria grouped by category and
sub-category down the side, job levels across the top.

Filters combine with AND. Category and sub-category rows with no
remaining content are pruned from the grid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, _ := cmd.Flags().GetStringSlice("level")
			categories, _ := cmd.Flags().GetStringSlice("category")
			subCategories, _ := cmd.Flags().GetStringSlice("sub-category")
			search, _ := cmd.Flags().GetString("search")

			filters := &primary.MatrixFilters{
				Levels:        levels,
				Categories:    categories,
				SubCategories: subCategories,
				Search:        search,
			}

			return wire.MatrixAdapter().ShowMatrix(cmd.Context(), filters)
		},
	}

	cmd.Flags().StringSliceP("level", "l", nil, "Only show the given job level columns")
	cmd.Flags().StringSliceP("category", "c", nil, "Only show the given categories")
	cmd.Flags().StringSlice("sub-category", nil, "Only show the given sub-categories")
	cmd.Flags().StringP("search", "s", "", "Only show capabilities containing the given text")

	return cmd
}
