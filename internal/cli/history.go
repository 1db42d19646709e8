package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the matrix edit log, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MatrixAdapter().ShowHistory(cmd.Context())
	},
}

var historyAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Record an edit in the log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			return fmt.Errorf("--date is required (YYYY-MM-DD)")
		}

		return wire.AdminAdapter().AddHistoryEntry(cmd.Context(), primary.CreateEditHistoryEntryRequest{
			Date:        date,
			Description: args[0],
		})
	},
}

// HistoryCmd returns the history command.
func HistoryCmd() *cobra.Command {
	historyAddCmd.Flags().StringP("date", "d", "", "Date of the edit (YYYY-MM-DD)")

	historyCmd.AddCommand(historyAddCmd)

	return historyCmd
}
