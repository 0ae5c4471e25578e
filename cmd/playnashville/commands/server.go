package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/imuzolev/playnashville/config"
	"github.com/imuzolev/playnashville/errors"
	"github.com/imuzolev/playnashville/logger"
	"github.com/imuzolev/playnashville/server"
	"github.com/imuzolev/playnashville/theory"
)

// ServerCmd starts the annotation HTTP/WebSocket server.
var ServerCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Start the annotation HTTP and WebSocket server",
	Long: `Serve the annotation pipeline over HTTP (POST /api/process) and
WebSocket (/ws). The config file is watched while running, so rate limits,
allowed origins, and the default mode can be changed without a restart.`,
	RunE: runServer,
}

var (
	serverPort       int
	serverConfigPath string
)

func init() {
	ServerCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "Listen port (overrides config)")
	ServerCmd.Flags().StringVarP(&serverConfigPath, "config", "c", "", "Config file path (default: nearest nashville.toml)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Default to Info for the server, a silent daemon helps nobody
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = 1
	}

	var cfg *config.Config
	var err error
	if serverConfigPath != "" {
		cfg, err = config.LoadFromFile(serverConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if err := logger.InitializeWithLevel(cfg.Log.JSON, logger.VerbosityToLevel(verbosity)); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	port := cfg.Server.Port
	if serverPort != 0 {
		port = serverPort
	}

	srv, err := server.New(theory.NewCatalog(), cfg, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to create server")
	}

	printStartupBanner(verbosity, port)

	// Hot-reload the reloadable config sections on file changes
	watchPath := serverConfigPath
	if watchPath == "" {
		watchPath = config.ProjectConfigPath()
	}
	if watchPath != "" {
		watcher, werr := config.NewWatcher(watchPath)
		if werr != nil {
			logger.Logger.Warnw("Config watching disabled", "path", watchPath, "error", werr)
		} else {
			watcher.OnReload(srv.ApplyConfig)
			watcher.Start()
			defer watcher.Stop()
			pterm.Info.Printf("Watching %s for config changes\n", watchPath)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed")
	case <-sigChan:
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			shutdownDone <- srv.Shutdown(ctx)
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return errors.Wrap(err, "shutdown error")
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			pterm.Warning.Println("\nForce shutdown - exiting immediately")
			os.Exit(1)
			return nil // unreachable
		}
	}
}
