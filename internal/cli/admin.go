package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/seeder"
)

// AdminCmd returns the admin subcommand, a shorthand for seed --admin.
func AdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Create only the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			return seeder.New(pool, time.Now().UnixNano()).SeedAdmin()
		},
	}
}
