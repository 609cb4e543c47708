// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"lipi/internal/platform/cache"
	"lipi/internal/platform/config"
	"lipi/internal/platform/logger"
	"lipi/internal/platform/metrics"
	phttp "lipi/internal/platform/net/http"
	"lipi/internal/platform/net/middleware"
	"lipi/internal/platform/store"
	"lipi/internal/platform/stream"

	"lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/modkit/module"
	"lipi/internal/modkit/swaggerkit"

	classifyapi "lipi/internal/services/api/classify/module"
	entriesapi "lipi/internal/services/api/entries/module"
	metamod "lipi/internal/services/api/meta/module"
	statsmod "lipi/internal/services/api/stats/module"

	clsdom "lipi/internal/services/classify/domain"
	classifymod "lipi/internal/services/classify/module"
	entriesmod "lipi/internal/services/entries/module"
	resultsmod "lipi/internal/services/results/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Cache backs the classify cache-aside; nil disables caching
	Cache *cache.Cache
	// Producer publishes result events on submit; nil disables publishing
	Producer *stream.Producer
	// Metrics wires request and cache collectors; nil disables them
	Metrics *metrics.Metrics
	// Auth gates every route when set; nil leaves the API open
	Auth middleware.AuthPort

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RD:  opt.Cache,
	}

	// Core modules first: their ports feed every HTTP module
	entriesCore := entriesmod.New(deps)
	resultsCore := resultsmod.New(deps)
	entPorts := entriesCore.Ports().(entriesmod.Ports)
	resPorts := resultsCore.Ports().(resultsmod.Ports)

	classifyCore := classifymod.New(
		deps,
		classifymod.FromConfig(deps.Cfg),
		modkit.WithPorts(clsdom.Ports{
			Entries:       entPorts.Reader,
			EntriesWriter: entPorts.Writer,
			Results:       resPorts.Writer,
		}),
	)
	if opt.Metrics != nil {
		classifyCore.WithMetrics(opt.Metrics)
	}

	var sink clsdom.EventSink
	if opt.Producer != nil {
		sink = classifymod.NewKafkaSink(opt.Producer)
	}

	apiEntries := entriesapi.New(deps, modkit.WithPorts(entriesapi.Ports{
		Entries:    entPorts.Writer,
		Results:    resPorts.Writer,
		Classifier: classifyCore.Service(),
		Sink:       sink,
	}))

	apiClassify := classifyapi.New(deps, modkit.WithPorts(classifyapi.Ports{
		Classifier: classifyCore.Service(),
	}))
	if opt.Metrics != nil {
		apiClassify.WithMetrics(opt.Metrics)
	}

	// meta stays open so probes work without credentials; everything else
	// sits behind bearer auth when a port is wired
	metaMod := metamod.New(deps, classifyCore.Pack())
	secured := []module.Module{
		statsmod.New(deps),
		apiEntries,
		apiClassify,
	}

	mw := httpkit.CommonStack()
	if opt.Metrics != nil {
		mw = append([]func(http.Handler) http.Handler{opt.Metrics.HTTPMiddleware()}, mw...)
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, mw, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		module.Register(metaMod.Name(), metaMod.Ports())
		metaMod.MountRoutes(api)

		mount := func(gr httpkit.Router) {
			for _, m := range secured {
				// register each module's ports under its own name (for cross-module lookups)
				module.Register(m.Name(), m.Ports())

				// mount module routes under its Prefix()
				m.MountRoutes(gr)
			}
		}
		if opt.Auth != nil {
			httpkit.Protected(api, opt.Auth, mount)
			return
		}
		mount(api)
	})
}
