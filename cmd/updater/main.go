// Command updater builds one dashboard snapshot and writes it as JSON.
//
// Usage:
//
//	olympics-updater run
//	olympics-updater run --out dashboard.json --pretty
//
// Scheduling is the host's job, cron or a systemd timer invokes run once per
// refresh interval. The process exits non-zero only when assembly fails;
// degraded categories are served from fallbacks and reported as warnings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/mcgregorb/olympics-dashboard/internal/app"
	"github.com/mcgregorb/olympics-dashboard/internal/config"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "olympics-updater",
		Short: "Milano Cortina 2026 dashboard snapshot updater",
	}
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		out    string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build one snapshot from live sources and write it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, pretty)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output path, - for stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func run(out string, pretty bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	svc, err := app.NewSnapshotService(cfg, logger)
	if err != nil {
		logger.Error("build snapshot service", "error", err)
		return err
	}

	start := time.Now()
	snap, err := svc.Build(ctx, time.Now())
	if err != nil {
		logger.Error("snapshot build failed", "error", err)
		return err
	}

	data, err := encode(snap, pretty)
	if err != nil {
		logger.Error("encode snapshot", "error", err)
		return err
	}

	if err := write(out, data); err != nil {
		logger.Error("write snapshot", "error", err, "out", out)
		return err
	}

	logger.Info("snapshot written",
		"out", out,
		"day", snap.Stats.Day,
		"events_complete", snap.Stats.EventsComplete,
		"warnings", len(snap.Warnings),
		"bytes", len(data),
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// encode uses the stdlib-compatible sonic config so map keys stay sorted and
// consecutive runs over identical inputs produce identical bytes.
func encode(v any, pretty bool) ([]byte, error) {
	if pretty {
		return sonic.ConfigStd.MarshalIndent(v, "", "  ")
	}
	return sonic.ConfigStd.Marshal(v)
}

func write(out string, data []byte) error {
	if out == "" || out == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
