package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/app"
	"github.com/ziadkadry99/mission-control/internal/dashboard"
	"github.com/ziadkadry99/mission-control/internal/provider"
	"github.com/ziadkadry99/mission-control/internal/server"
	"github.com/ziadkadry99/mission-control/internal/view"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Mission Control dashboard server",
	Long:  `Starts the dashboard: the page, its live event channel, the form fallbacks and the state API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		backend, closeBackend, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer closeBackend()

		data, err := provider.Load(cfg.Data.File)
		if err != nil {
			return fmt.Errorf("loading panel data: %w", err)
		}

		renderer, err := view.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, logger)

		factory := app.NewFactory(backend, cfg.Auth.Passphrase, logger)
		dashboard.New(factory, data, renderer, logger).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		logger.Info("missioncontrol starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.String("storage", string(cfg.Storage.Backend)),
			zap.String("data", dataSource(cfg.Data.File)),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func dataSource(file string) string {
	if file == "" {
		return "embedded"
	}
	return file
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
