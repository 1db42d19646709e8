package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

// SearchCmd returns the search command.
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search capability descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, _ := cmd.Flags().GetStringSlice("level")
			categories, _ := cmd.Flags().GetStringSlice("category")
			subCategories, _ := cmd.Flags().GetStringSlice("sub-category")

			filters := &primary.SearchFilters{
				Levels:        levels,
				Categories:    categories,
				SubCategories: subCategories,
			}

			return wire.MatrixAdapter().Search(cmd.Context(), args[0], filters)
		},
	}

	cmd.Flags().StringSliceP("level", "l", nil, "Restrict to the given job levels")
	cmd.Flags().StringSliceP("category", "c", nil, "Restrict to the given categories")
	cmd.Flags().StringSlice("sub-category", nil, "Restrict to the given sub-categories")

	return cmd
}
