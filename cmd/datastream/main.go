package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	gostreams "github.com/deadlyengineer/gamestream"
	"github.com/deadlyengineer/gamestream/gameevent"
	"github.com/deadlyengineer/gamestream/internal/config"
	"github.com/deadlyengineer/gamestream/internal/metrics"
	"github.com/deadlyengineer/gamestream/report"
	"github.com/deadlyengineer/gamestream/sequence"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	dumpMetrics := flag.Bool("metrics", false, "Write collected metrics to stderr in Prometheus text format")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		slog.Error("invalid log level", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()

	if err := run(ctx, cfg, os.Stdout, metrics.NewRecorder(reg)); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	if *dumpMetrics {
		if err := writeMetrics(os.Stderr, reg); err != nil {
			slog.Error("failed to write metrics", "err", err)
			os.Exit(1)
		}
	}
}

// newLogger returns a text logger writing to w at the configured level, tagged with a fresh run id.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString()), nil
}

// primeDemoLimit bounds the primes counted in the generator demonstration.
const primeDemoLimit = 100

func run(ctx context.Context, cfg config.Config, out io.Writer, rec *metrics.Recorder) error {
	tag, err := cfg.Tag()
	if err != nil {
		return err
	}

	r := report.NewWriter(out, tag)

	total := uint64(cfg.TotalEvents)

	r.Header(total)

	slog.Debug("aggregating events", "total_events", total)

	start := time.Now()

	var (
		byAction map[gameevent.Action]uint64
		latest   map[string]gameevent.Event
	)

	events := gostreams.From[gameevent.Event](gameevent.NewGenerator(total))
	events = rec.Instrument(events)
	events = gostreams.Peek(events, gostreams.Into(&byAction, gameevent.CountActions()))
	events = gostreams.Peek(events, gostreams.Into(&latest, gameevent.LatestByPlayer()))
	events = gostreams.Peek(events, r.Preview(uint64(cfg.PreviewCount)))

	summary, err := gameevent.AggregateStream(ctx, events)
	if err != nil {
		return fmt.Errorf("aggregate events: %w", err)
	}

	elapsed := time.Since(start)

	slog.Info("events aggregated",
		"processed", summary.Processed,
		"high_level", summary.HighLevelCount,
		"treasure", summary.TreasureCount,
		"level_up", summary.LevelUpCount,
		"elapsed", elapsed)

	r.Summary(summary, elapsed)

	leaders, err := gameevent.Leaderboard(ctx, latest)
	if err != nil {
		return fmt.Errorf("rank players: %w", err)
	}

	r.Breakdown(byAction, leaders)

	fib, err := gostreams.CollectFirst[*big.Int](ctx, sequence.NewFibonacci(), uint64(cfg.FibonacciCount))
	if err != nil {
		return fmt.Errorf("collect fibonacci numbers: %w", err)
	}

	primes, err := gostreams.CollectFirst[uint64](ctx, sequence.NewPrimes(), uint64(cfg.PrimeCount))
	if err != nil {
		return fmt.Errorf("collect primes: %w", err)
	}

	primesBelow, err := gostreams.Count(ctx, sequence.PrimesBelow(primeDemoLimit))
	if err != nil {
		return fmt.Errorf("count primes: %w", err)
	}

	r.DemoHeader()
	r.Sequence("Fibonacci sequence", cfg.FibonacciCount, report.JoinNumbers(fib))
	r.Sequence("Prime numbers", cfg.PrimeCount, report.JoinNumbers(primes))
	r.PrimesBelow(primeDemoLimit, primesBelow)

	if err := r.Err(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metric %s: %w", family.GetName(), err)
		}
	}

	return nil
}
