// SPDX-License-Identifier: MIT

// Command tubemap loads a transit network from its station and connection tables and
// either answers one route query or serves the HTTP API.
//
//	tubemap -config tubemap.yaml -from "CHANCERY LANE" -to "OLD STREET"
//	tubemap -config tubemap.yaml -serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/tubemap/internal/app"
	"github.com/katalvlaran/tubemap/internal/config"
	"github.com/katalvlaran/tubemap/internal/logging"
	"github.com/katalvlaran/tubemap/report"
	"github.com/katalvlaran/tubemap/route"
)

func main() {
	os.Exit(start())
}

func start() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tubemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (default $"+config.PathEnv+")")
		from       = fs.String("from", "", "start station")
		to         = fs.String("to", "", "end station")
		avoid      = fs.String("avoid", "", "comma-separated lines to avoid")
		serve      = fs.Bool("serve", false, "serve the HTTP API instead of answering one query")
		showStats  = fs.Bool("stats", false, "print network statistics")
		showLines  = fs.Bool("lines", false, "print per-line statistics")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tubemap [flags]")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, "Environment:", strings.Join(config.Keys(), " "))
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync() // best-effort flush
	if len(cfg.Overrides) > 0 {
		logger.Debug("environment overrides", zap.Strings("keys", cfg.Overrides))
	}

	if *serve {
		application, err := app.New(cfg, logger)
		if err != nil {
			logger.Error("failed to initialize application", zap.Error(err))
			return 1
		}
		if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("application stopped with error", zap.Error(err))
			return 1
		}
		return 0
	}

	session, err := app.Load(cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	best := route.DefaultOptions().MaxDistance
	if *from != "" || *to != "" {
		r, d, err := session.Route(*from, *to, splitFlag(*avoid)...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		best = d
		if err := report.Route(stdout, *from, *to, r); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if *showStats {
		if err := report.Legend(stdout, session.Summary, best); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *showLines {
		if err := report.Lines(stdout, session.Lines, session.Palette); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return 0
}

func splitFlag(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
