package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dimityrivanov/transaction-insights/cmd/insights/config"
	"github.com/dimityrivanov/transaction-insights/internal/server"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis pipeline over HTTP",
	Long: `Serve starts an HTTP server exposing POST /analyze, which accepts a
statement export as a raw JSON body or a multipart file upload and returns
the financial-behavior report.

Examples:
  insights serve
  insights serve --listen :8080
  INSIGHTS_SERVER_CORS_ORIGINS=https://app.example.com insights serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", ":5000", "listen address")
	serveCmd.Flags().String("cors-origins", "*", "comma-separated allowed CORS origins")
	serveCmd.Flags().Int("body-limit", 10*1024*1024, "maximum request body size in bytes")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.cors_origins", serveCmd.Flags().Lookup("cors-origins"))
	viper.BindPFlag("server.body_limit", serveCmd.Flags().Lookup("body-limit"))
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.GetGlobalLogger()
	srv := server.New(config.BuildServerConfig(), log)

	// Shut down cleanly on SIGINT/SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-done
		log.WithField("signal", sig.String()).Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			log.WithError(err).Error("Shutdown failed")
		}
	}()

	return srv.Listen()
}
