package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/semview/internal/server"
	"github.com/ziadkadry99/semview/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mapping viewer over HTTP",
	Long: `Loads the mapping document once, then serves the viewer: a grouped
variable list beside a detail panel for the selected variable.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().String("source", "", "override the configured document source")
	serveCmd.Flags().String("title", "", "override the configured page title")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	controller := view.NewController(cfg.Source, cfg.Title)

	// The document loads fully before any rendering. A failed load is not
	// fatal: the server comes up and shows the error state instead.
	if err := controller.Load(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Serving the error page; fix the source and restart.")
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, controller)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	fmt.Printf("Viewing %s at http://localhost:%d\n", cfg.Source, cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
