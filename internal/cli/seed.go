package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/seeder"
)

// SeedCmd returns the seed subcommand.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		Long: `Populate the database with demo data: users, an organization with
members, workspaces, projects, sprints, tasks and their comments, labels,
dependencies, watchers and time entries.

Seeding is idempotent; existing records are left untouched. Use --admin
to create only the admin account, and --seed to pin the random generator
for reproducible time entries.`,
		RunE: runSeed,
	}

	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().Bool("admin", false, "Create only the admin account")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	rngSeed, _ := cmd.Flags().GetInt64("seed")
	adminOnly, _ := cmd.Flags().GetBool("admin")
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	pool, err := connect()
	if err != nil {
		return err
	}
	defer database.Close()

	s := seeder.New(pool, rngSeed)
	if adminOnly {
		return s.SeedAdmin()
	}
	return s.Seed()
}
