package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spigell/smart-recruit/internal/render"
	"github.com/spigell/smart-recruit/internal/web"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recruiting console",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address the console listens on (default :8080)")
	serveCmd.Flags().Bool("refresh-options", false, "refetch offers and candidates every time the analysis section opens")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("analysis.refresh-options", serveCmd.Flags().Lookup("refresh-options"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the smart-recruit console", zap.String("api_url", config.APIURL))

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("loading templates", zap.Error(err))
	}

	c, err := newConsole(config, logger)
	if err != nil {
		logger.Fatal("creating the console", zap.Error(err))
	}

	c.Bootstrap(ctx)

	monitor := c.NewMonitor()
	if err := monitor.Start(ctx); err != nil {
		logger.Fatal("starting the health monitor", zap.Error(err))
	}
	defer monitor.Stop()

	server := web.New(c, renderer, logger.Named("web"))

	errs := make(chan error, 1)
	go func() {
		errs <- server.Listen(config.Listen)
	}()

	select {
	case err := <-errs:
		if err != nil {
			logger.Error("console server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.String("reason", "signal received"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutting down the console server", zap.Error(err))
		}
	}
}
