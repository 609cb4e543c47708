// @title         Lipi API
// @version       0.1.0
// @description   Script and language classification for Hinglish journaling text

package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"lipi/internal/modkit/httpkit"
	"lipi/internal/modkit/repokit"
	"lipi/internal/platform/cache"
	"lipi/internal/platform/config"
	perrs "lipi/internal/platform/errors"
	"lipi/internal/platform/logger"
	"lipi/internal/platform/metrics"
	phttp "lipi/internal/platform/net/http"
	"lipi/internal/platform/net/middleware"
	"lipi/internal/platform/store"
	"lipi/internal/platform/stream"

	"lipi/internal/services/api"
)

// staticAuth accepts a single shared bearer token. The caller identity rides
// on the X-User-Id header once the token checks out
type staticAuth struct{ token string }

func (a staticAuth) Parse(r *http.Request) (string, error) {
	raw, err := httpkit.JWT(r)
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(raw), []byte(a.token)) != 1 {
		return "", perrs.Unauthorizedf("bad bearer token")
	}
	if uid := r.Header.Get("X-User-Id"); uid != "" {
		return uid, nil
	}
	return "api", nil
}

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	rdCfg := root.Prefix("SERVICE_REDIS_")      // rdCfg lives under SERVICE_REDIS_*
	kfCfg := root.Prefix("SERVICE_KAFKA_")      // kfCfg lives under SERVICE_KAFKA_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres + optional CH adapter)
	st, err := store.Open(
		ctx,
		store.Config{
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
				ClientTag:  "api",
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to serve if postgres or clickhouse can't answer
	repokit.MustGuard(ctx, st)

	// optional classify result cache
	var rd *cache.Cache
	if rdCfg.MayBool("ENABLED", false) {
		rd, err = cache.Open(ctx, cache.Config{
			Addr:   rdCfg.MustString("ADDR"),
			DB:     rdCfg.MayInt("DB", 0),
			Prefix: rdCfg.MayString("PREFIX", "lipi:"),
		})
		if err != nil {
			l.Panic().Err(err).Msg("cache.Open failed")
		}
		defer func() { _ = rd.Close() }()
	}

	// optional result event publishing
	var producer *stream.Producer
	if kfCfg.MayBool("ENABLED", false) {
		resultTopic := kfCfg.MayString("RESULT_TOPIC", "lipi.results")
		producer = stream.NewProducer(stream.Config{
			Brokers:     kfCfg.MayCSV("BROKERS", []string{"localhost:9092"}),
			ResultTopic: resultTopic,
		}, resultTopic)
		defer func() { _ = producer.Close() }()
	}

	// optional shared-token auth; unset leaves the API open
	var auth middleware.AuthPort
	if tok := apiCfg.MayString("TOKEN", ""); tok != "" {
		auth = staticAuth{token: tok}
	}

	mx := metrics.New()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)
	srv.Router().Handle("/metrics", mx.Handler())

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Cache:          rd,
			Producer:       producer,
			Metrics:        mx,
			Auth:           auth,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run until signalled, then drain
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
