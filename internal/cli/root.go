package cli

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/config"
	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "planhub",
	Short: "PlanHub - multi-tenant project and task management",
	Long:  `PlanHub is a multi-tenant project management backend: organizations, workspaces, projects, sprints and tasks behind a REST API, plus database seeding tooling.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(SeedCmd())
	rootCmd.AddCommand(AdminCmd())
	rootCmd.AddCommand(ClearCmd())
	rootCmd.AddCommand(ResetCmd())
}

// connect loads the configuration, opens the database pool and runs the
// migrations, the common preamble of every data command.
func connect() (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pool, nil
}
