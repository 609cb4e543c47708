// Package module implements the backfill module
package module

import (
	"net/http"

	"lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/services/backfill/domain"
	"lipi/internal/services/backfill/service"
)

// Ports exposed by the backfill module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new backfill module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("backfill"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("backfill module: expected WithPorts(backfill/domain.Ports)")
	}
	if ports.Entries == nil {
		panic("backfill module: Ports missing Entries")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.BatchSize != 0 {
		cfg.BatchSize = overrides.BatchSize
	}
	if overrides.Version != 0 {
		cfg.Version = overrides.Version
	}
	if overrides.Gzip {
		cfg.Gzip = true
	}

	svc := service.New(ports.Entries, service.Config{
		BatchSize: cfg.BatchSize,
		Version:   cfg.Version,
		Gzip:      cfg.Gzip,
	})
	svc.Results = ports.Results
	svc.Classifier = ports.Classifier

	return &Module{deps: deps, ports: Ports{Runner: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "backfill" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
