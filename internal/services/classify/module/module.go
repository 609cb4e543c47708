// Package module implements the classify module
package module

import (
	"net/http"

	"lipi/internal/core/classifier"
	"lipi/internal/core/lexicon"
	"lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/platform/metrics"
	"lipi/internal/services/classify/domain"
	"lipi/internal/services/classify/service"
)

// Ports exposed by the classify module
type Ports struct {
	Runner     domain.RunnerPort
	Classifier domain.ClassifyPort
	Stream     *service.StreamWorker // nil unless EntriesWriter was provided
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	pack  *lexicon.Pack
}

// New constructs a new classify module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("classify"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("classify module: expected WithPorts(classify/domain.Ports)")
	}
	if ports.Entries == nil || ports.Results == nil {
		panic("classify module: Ports missing Entries or Results")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Version != 0 {
		cfg.Version = overrides.Version
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	// bool override wins (defaults false if caller didn't set)
	cfg.DryRun = overrides.DryRun

	// Shared lexicon pack; embedded, so failure is a build defect
	pack, err := lexicon.Load()
	if err != nil {
		panic(err)
	}

	svc := service.New(
		ports.Entries,
		ports.Results,
		classifier.New(pack),
		service.Config{
			Version:  cfg.Version,
			Workers:  cfg.Workers,
			PageSize: cfg.PageSize,
			DryRun:   cfg.DryRun,
		},
	)
	svc.CH = deps.CH

	m := &Module{deps: deps, pack: pack}
	m.ports = Ports{Runner: svc, Classifier: svc}
	if ports.EntriesWriter != nil {
		m.ports.Stream = service.NewStreamWorker(svc, ports.EntriesWriter)
	}
	return m
}

// Service exposes the concrete service for sink/metrics wiring in main
func (m *Module) Service() *service.Service {
	return m.ports.Runner.(*service.Service)
}

// Pack exposes the loaded lexicon pack (meta endpoints report its sizes)
func (m *Module) Pack() *lexicon.Pack { return m.pack }

// WithMetrics attaches prometheus collectors and records pack sizes
func (m *Module) WithMetrics(mx *metrics.Metrics) *Module {
	m.Service().Metrics = mx
	en, hi, pat := m.pack.Sizes()
	mx.SetLexiconSizes(en, hi, pat)
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "classify" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
