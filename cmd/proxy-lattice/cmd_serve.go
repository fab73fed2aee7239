package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"proxy-lattice/internal/config"
	"proxy-lattice/internal/directory"
	"proxy-lattice/internal/operators"
	"proxy-lattice/internal/server"
)

var (
	servePort      string
	serveDirectory string
	serveWatch     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the @operators endpoint",
	Long: `Serves GET /@operators backed by a YAML user directory.

Settings come from the environment (PORT, APP_ENV, DIRECTORY_FILE,
DIRECTORY_WATCH, OPERATORS_GROUP, OPERATORS_CACHE_TTL, LOG_FORMAT),
optionally through a .env file. Flags take precedence.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen address (default: $PORT or "+config.DefaultPort+")")
	serveCmd.Flags().StringVar(&serveDirectory, "directory", "", "User directory file (default: $DIRECTORY_FILE)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the directory file when it changes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	applyServeFlags(cmd, cfg)

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("directory", cfg.Directory.File),
		zap.Bool("watch", cfg.Directory.Watch),
		zap.String("group", cfg.Operators.Group),
		zap.Duration("cache_ttl", cfg.Operators.CacheTTL),
		zap.String("log_format", string(cfg.Log.Format)))

	dir, err := directory.Load(cfg.Directory.File, directory.WithLogger(logger.Named("directory")))
	if err != nil {
		return err
	}

	svc := operators.NewService(dir,
		operators.WithLogger(logger.Named("operators")),
		operators.WithDefaultGroup(cfg.Operators.Group),
		operators.WithCache(operators.DefaultCacheSize, cfg.Operators.CacheTTL))
	dir.OnReload(svc.Purge)

	ln, err := net.Listen("tcp", cfg.Port)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Port, server.NewMux(svc, logger.Named("http")), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, ln, dir, cfg.Directory.Watch)
}

// serve runs the server, and the directory watcher when watch is set,
// until ctx is cancelled or either of them fails.
func serve(ctx context.Context, srv *server.Server, ln net.Listener, dir *directory.Directory, watch bool) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return srv.Run(gctx, ln) })

	if watch {
		g.Go(func() error { return dir.Watch(gctx) })
	}

	return g.Wait()
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("port") {
		cfg.Port = config.NormalizePort(servePort)
	}

	if flags.Changed("directory") {
		cfg.Directory.File = serveDirectory
	}

	if flags.Changed("watch") {
		cfg.Directory.Watch = serveWatch
	}
}
