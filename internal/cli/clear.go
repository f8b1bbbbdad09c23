package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/seeder"
)

// ClearCmd returns the clear subcommand.
func ClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all demo data",
		Long:  `Delete all demo data in reverse dependency order, children before parents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			return seeder.New(pool, time.Now().UnixNano()).Clear()
		},
	}
}
