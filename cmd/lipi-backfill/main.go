// Command lipi-backfill imports journal entries from a JSONL file
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"lipi/internal/modkit"
	"lipi/internal/modkit/module"
	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/config"
	"lipi/internal/platform/logger"
	"lipi/internal/platform/store"

	bfdom "lipi/internal/services/backfill/domain"
	backfillmod "lipi/internal/services/backfill/module"
	clsdom "lipi/internal/services/classify/domain"
	classifymod "lipi/internal/services/classify/module"
	entriesmod "lipi/internal/services/entries/module"
	resultsmod "lipi/internal/services/results/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	var (
		in       = flag.String("in", "-", "input JSONL path, '-' for stdin")
		out      = flag.String("out", "", "optional JSONL results echo path, '-' for stdout")
		classify = flag.Bool("classify", false, "classify inline and write results")
		ver      = flag.Int("ver", 0, "detector version to stamp (0 = current)")
		batch    = flag.Int("batch", 500, "insert batch size")
		dryRun   = flag.Bool("dry-run", false, "parse and validate only, write nothing")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast before reading any input
	repokit.MustPing(ctx, "postgres", st.PG)

	// Pass CLI flags into CORE_BACKFILL_* so the module can read its own config
	mustSetEnv("CORE_BACKFILL_BATCH_SIZE", strconv.Itoa(*batch))
	mustSetEnv("CORE_BACKFILL_VERSION", strconv.Itoa(*ver))
	mustSetEnv("CORE_BACKFILL_GZIP", map[bool]string{true: "1", false: "0"}[strings.HasSuffix(*in, ".gz")])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	em := entriesmod.New(deps)
	ports := bfdom.Ports{
		Entries: module.MustPortsOf[entriesmod.Ports](em).Writer,
	}

	// The classify stack is only built when requested
	if *classify {
		rm := resultsmod.New(deps)
		cm := classifymod.New(
			deps,
			classifymod.Options{Version: *ver},
			modkit.WithPorts(clsdom.Ports{
				Entries: module.MustPortsOf[entriesmod.Ports](em).Reader,
				Results: module.MustPortsOf[resultsmod.Ports](rm).Writer,
			}),
		)
		ports.Results = module.MustPortsOf[resultsmod.Ports](rm).Writer
		ports.Classifier = cm.Service()
	}

	bm := backfillmod.New(
		deps,
		backfillmod.Options{BatchSize: *batch, Version: *ver},
		modkit.WithPorts(ports),
	)
	module.Register(bm.Name(), bm.Ports())

	src, err := openIn(*in)
	if err != nil {
		l.Panic().Err(err).Str("path", *in).Msg("open input failed")
	}
	defer func() { _ = src.Close() }()

	echo, closeEcho, err := openOut(*out)
	if err != nil {
		l.Panic().Err(err).Str("path", *out).Msg("open output failed")
	}
	defer closeEcho()

	runner := bm.Ports().(backfillmod.Ports).Runner
	report, err := runner.Run(ctx, src, echo, bfdom.RunInput{
		Classify: *classify,
		DryRun:   *dryRun,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("backfill failed")
	}
	l.Info().
		Int("lines", report.Lines).
		Int("imported", report.Imported).
		Int("malformed", report.Malformed).
		Int("classified", report.Classified).
		Msg("backfill complete")
}

func openIn(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOut returns a nil writer when echoing is disabled
func openOut(path string) (io.Writer, func(), error) {
	switch path {
	case "":
		return nil, func() {}, nil
	case "-":
		return os.Stdout, func() {}, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
}
