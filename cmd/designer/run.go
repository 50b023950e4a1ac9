package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tui-designer/internal/config"
	"github.com/grindlemire/go-tui-designer/internal/debug"
	"github.com/grindlemire/go-tui-designer/internal/designer"
	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

// newApp creates the terminal app. Tests replace it with a mock terminal.
var newApp = term.NewApp

type runOptions struct {
	configPath  string
	layoutPath  string
	debugLog    string
	theme       string
	metricsAddr string
	watch       bool
}

func buildRunCmd(configPath *string) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive designer",
		Long: `Open the interactive designer in the current terminal.

Add components from the palette (or keys 1-3), drag them with the mouse,
edit them from the keyboard and press q to quit. With --layout the layout
is loaded on start and saved on exit.`,
		Example: `  designer run
  designer run --layout home.yaml --theme luxury
  designer run --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDesigner(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layoutPath, "layout", "l", "", "Layout file to load on start and save on exit")
	cmd.Flags().StringVar(&opts.debugLog, "debug-log", "", "Write debug logs to this file (overrides debug_log)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme: dark-pro, light, brutalist or luxury (overrides theme)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus /metrics on this address (overrides metrics_addr)")
	cmd.Flags().BoolVar(&opts.watch, "watch", true, "Reload theme and snap grid when the config file changes")
	return cmd
}

// runDesigner runs the designer until the user quits or ctx is done. The
// event loop, config watcher and metrics server share one errgroup; when
// the event loop returns the others are stopped.
func runDesigner(ctx context.Context, opts runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.metricsAddr != "" {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if opts.debugLog != "" {
		cfg.DebugLog = opts.debugLog
	}
	if cfg.DebugLog != "" {
		if err := debug.Init(cfg.DebugLog); err != nil {
			return err
		}
		defer debug.Close()
	}
	logger := debug.Logger()

	doc := canvas.NewDocument(canvas.WithSizes(cfg.KindSizes()))
	if opts.layoutPath != "" {
		if err := doc.LoadLayout(opts.layoutPath); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	d, err := designer.New(doc, designer.Options{
		Theme:        cfg.Theme,
		SnapGrid:     cfg.SnapGrid,
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
		Metrics:      drag.NewMetrics(reg),
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer d.Close()

	app, err := newApp(d, term.WithFrameRate(cfg.FrameRate), term.WithInputLatency(cfg.InputLatency))
	if err != nil {
		return err
	}
	if err := d.Attach(app); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		if err := serveMetrics(gctx, g, cfg.MetricsAddr, reg, logger); err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
	}

	g.Go(func() error {
		defer cancel()
		return app.Run(gctx)
	})

	if opts.watch && opts.configPath != "" {
		g.Go(func() error {
			return config.Watch(gctx, opts.configPath, func(next config.Config) {
				app.QueueUpdate(func() {
					if err := d.SetTheme(next.Theme); err != nil {
						logger.Warn("config reload: theme", "error", err)
					}
					d.SetSnapGrid(next.SnapGrid)
				})
			})
		})
	}

	runErr := g.Wait()
	if opts.layoutPath != "" {
		if err := doc.SaveLayout(opts.layoutPath); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

// serveMetrics starts a /metrics endpoint for reg on g. It is shut down
// when ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen: %w", err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logger.Info("serving metrics", "addr", ln.Addr().String())

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return nil
}
