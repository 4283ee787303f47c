// ABOUTME: CLI command for running the local web dashboard.
// ABOUTME: Serves until interrupted, then shuts down gracefully.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fevertrack/internal/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web dashboard",
	Long: `Start the local web dashboard.

The dashboard shows the temperature chart with medication markers and a
critical-fever guideline, and has forms for logging new entries. It
binds to localhost only; nothing is exposed to the network by default.

EXAMPLES:

  fevertrack serve                        # default 127.0.0.1:8754
  fevertrack serve --addr 127.0.0.1:9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.GetListenAddr()
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		server := web.New(store, cfg.GetCriticalTemp(), logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}
