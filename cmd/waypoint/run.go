package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vitalvas/waypoint/routefile"
	"github.com/vitalvas/waypoint/routemetrics"
	"github.com/vitalvas/waypoint/router"
	"golang.org/x/term"
)

func runCmd(root *rootOptions) *cobra.Command {
	var (
		file        string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run -f FILE [SCRIPT]",
		Short: "Drive a navigation stack built from a route file",
		Long: `Run builds a router from a YAML route file and reads navigation
commands from SCRIPT, or from standard input when no script is given.
Type "help" at the prompt for the command list.`,
		Example: `  waypoint run -f routes.yaml
  waypoint run -f routes.yaml session.txt --log-level debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := routefile.LoadFile(file)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()

			obs, err := routemetrics.New(routemetrics.WithRegisterer(reg))
			if err != nil {
				return err
			}

			cfg, err := routefile.Config(f, screenFactories(f, logger))
			if err != nil {
				return err
			}

			cfg.Logger = logger
			cfg.Observer = obs

			r, err := router.New(cfg)
			if err != nil {
				return err
			}

			defer func() {
				if err := r.Shutdown(); err != nil {
					logger.Warn("shutdown router", "error", err)
				}
			}()

			if metricsAddr != "" {
				stop, err := serveMetrics(metricsAddr, reg, logger)
				if err != nil {
					return err
				}
				defer stop()
			}

			in, interactive, closeIn, err := commandInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			s := &session{router: r, out: cmd.OutOrStdout()}

			return s.run(in, interactive)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML route file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// commandInput picks the script file or standard input. Only a terminal on
// standard input gets a prompt.
func commandInput(cmd *cobra.Command, args []string) (io.Reader, bool, func(), error) {
	if len(args) == 1 {
		fh, err := os.Open(args[0])
		if err != nil {
			return nil, false, nil, err
		}
		return fh, false, func() { fh.Close() }, nil
	}

	in := cmd.InOrStdin()

	interactive := false
	if fh, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(fh.Fd()))
	}

	return in, interactive, func() {}, nil
}

// serveMetrics exposes reg on addr under /metrics until the returned stop
// function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}, nil
}
