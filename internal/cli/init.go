// Package cli defines the cobra commands for the ladder binary. Commands
// parse flags and delegate to the adapters and services from the wire
// package.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ladder/internal/db"
	"github.com/example/ladder/internal/wire"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the ladder database",
		Long:  `Initialize the ladder database at ~/.ladder/ladder.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()

			path := cfg.DBPath
			if path == "" {
				var err error
				path, err = db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to get database path: %w", err)
				}
			}

			// wire.Config already opened the connection and applied the schema.
			fmt.Printf("✓ Database initialized at %s\n", path)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  ladder seed --demo")
			fmt.Println("  ladder matrix")

			return nil
		},
	}
}
