package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/planhub/planhub/internal/config"
	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/server"
)

// ServeCmd returns the API server subcommand.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.C("serve")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server Shutdown: %v", err)
	}
	log.Info("Server exiting")
	return nil
}
