package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sptid/feature/overrides"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the resolution server",
	Long:  `Loads the active language, watches the workspace for override files and serves lookups over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := loadSettings()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 2. Load tables and the initial custom layer
		rt, err := openRuntime(ctx, cfg, logg, cfg.Workspace.Root != "")
		if err != nil {
			logg.Fatal("Failed to initialize resolution service", zap.Error(err))
		}

		// 3. Watch the workspace
		if rt.watcher != nil {
			notifier := overrides.NewFSNotifier(rt.watcher)
			go func() {
				if err := notifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logg.Error("Workspace watcher stopped", zap.Error(err))
				}
			}()
		} else {
			logg.Info("No workspace configured, custom layer disabled")
		}

		if !cfg.Server.IsLoopback() {
			logg.Warn("Server is not bound to a loopback address", zap.String("host", cfg.Server.Host))
		}

		app, err := newApp(cfg, logg, rt)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.String("language", rt.service.Language()),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
