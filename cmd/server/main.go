//	@title			Vibe Board API
//	@version		1.0
//	@description	Task list backed by a flat JSON file.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gauravchand/vibe-task-board/internal/api"
	"github.com/gauravchand/vibe-task-board/internal/config"
	"github.com/gauravchand/vibe-task-board/internal/store"
	"github.com/gauravchand/vibe-task-board/internal/task"
)

const shutdownTimeout = 10 * time.Second

var version = "dev"

var (
	configFile string
	verbose    bool

	v      = viper.New()
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vibeboard",
	Short: "Vibe Board task service",
	Long: `Serves the task API and the built frontend.

Tasks are kept in a single JSON file by default; Redis and MongoDB
can be selected with --store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file (default ./vibeboard.yaml if present)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	pf.String("addr", ":8000", "listen address")
	pf.String("store", config.DriverFile, "store driver: file, redis or mongo")
	pf.String("data", "../tasks.json", "task file for the file store")
	pf.String("dist", "../frontend/dist", "built frontend directory")

	for key, flag := range map[string]string{
		"server.addr":     "addr",
		"store.driver":    "store",
		"store.file.path": "data",
		"frontend.dist":   "dist",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.Options{
		Service:      task.NewService(backend),
		Logger:       logger,
		CORSOrigins:  cfg.Server.CORSOrigins,
		FrontendDist: cfg.Frontend.Dist,
		Docs:         cfg.Docs.Enabled,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Server.Addr),
			zap.String("store", cfg.Store.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
