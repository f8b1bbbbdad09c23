package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/seeder"
)

// ResetCmd returns the reset subcommand, clear followed by seed.
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the database and reseed it",
		RunE: func(cmd *cobra.Command, args []string) error {
			rngSeed, _ := cmd.Flags().GetInt64("seed")
			if rngSeed == 0 {
				rngSeed = time.Now().UnixNano()
			}

			pool, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			return seeder.New(pool, rngSeed).Reset()
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")

	return cmd
}
