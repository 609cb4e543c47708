// Command lipi-classify runs the classification worker, either as a batch
// pass over pending entries or as a Kafka stream consumer
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"lipi/internal/modkit"
	"lipi/internal/modkit/module"
	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/config"
	"lipi/internal/platform/logger"
	"lipi/internal/platform/store"
	"lipi/internal/platform/stream"

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
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	kfCfg := root.Prefix("SERVICE_KAFKA_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", false),
			URL:        chCfg.MayString("DBURL", ""),
			ClientRole: "lipi",
			ClientTag:  "classify",
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

	// a worker with a dead database has nothing to do
	repokit.MustPing(ctx, "postgres", st.PG)

	var (
		ver     = flag.Int("ver", 0, "detector version to stamp (0 = current)")
		workers = flag.Int("workers", 2, "concurrency (>=1)")
		page    = flag.Int("page", 5000, "page size (rows)")
		stale   = flag.Bool("stale", false, "re-classify entries stamped by older detector versions")
		dryRun  = flag.Bool("dry-run", false, "compute but do not write results")
		streamF = flag.Bool("stream", false, "consume entry events from kafka instead of a batch pass")
	)
	flag.Parse()

	// Pass CLI flags into CORE_CLASSIFY_* so the module can read its own config
	mustSetEnv("CORE_CLASSIFY_VERSION", strconv.Itoa(*ver))
	mustSetEnv("CORE_CLASSIFY_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_CLASSIFY_PAGE_SIZE", strconv.Itoa(*page))
	mustSetEnv("CORE_CLASSIFY_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	// Build dependency modules first
	em := entriesmod.New(deps)
	rm := resultsmod.New(deps)

	cm := classifymod.New(
		deps,
		classifymod.Options{
			Version:  *ver,
			Workers:  *workers,
			PageSize: *page,
			DryRun:   *dryRun,
		},
		modkit.WithPorts(clsdom.Ports{
			Entries:       module.MustPortsOf[entriesmod.Ports](em).Reader,
			EntriesWriter: module.MustPortsOf[entriesmod.Ports](em).Writer,
			Results:       module.MustPortsOf[resultsmod.Ports](rm).Writer,
		}),
	)

	// Register ports
	module.Register(em.Name(), em.Ports())
	module.Register(rm.Name(), rm.Ports())
	module.Register(cm.Name(), cm.Ports())

	kafkaCfg := stream.Config{
		Brokers:     kfCfg.MayCSV("BROKERS", []string{"localhost:9092"}),
		Group:       kfCfg.MayString("GROUP", "lipi-classify"),
		EntryTopic:  kfCfg.MayString("ENTRY_TOPIC", "lipi.entries"),
		ResultTopic: kfCfg.MayString("RESULT_TOPIC", "lipi.results"),
	}

	// Optional result event publishing in both modes
	if kfCfg.MayBool("PUBLISH_RESULTS", false) {
		producer := stream.NewProducer(kafkaCfg, kafkaCfg.ResultTopic)
		defer func() { _ = producer.Close() }()
		cm.Service().Sink = classifymod.NewKafkaSink(producer)
	}

	ports := cm.Ports().(classifymod.Ports)

	if *streamF {
		if ports.Stream == nil {
			l.Panic().Msg("stream worker not wired")
		}
		consumer := stream.NewConsumer(kafkaCfg, kafkaCfg.EntryTopic, ports.Stream.Handle)
		if err := consumer.Run(ctx); err != nil {
			l.Fatal().Err(err).Msg("stream consumer failed")
		}
		return
	}

	stats, err := ports.Runner.RunBatch(ctx, clsdom.BatchInput{
		Stale:    *stale,
		PageSize: *page,
		Workers:  *workers,
		DryRun:   *dryRun,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("classify failed")
	}
	l.Info().
		Int("scanned", stats.Scanned).
		Int("written", stats.Written).
		Int("skipped", stats.Skipped).
		Msg("classify complete")
}
