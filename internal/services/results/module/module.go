// Package module implements the results service module
package module

import (
	"net/http"

	"lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/modkit/repokit"
	"lipi/internal/services/results/domain"
	"lipi/internal/services/results/repo"
	"lipi/internal/services/results/service"
)

// Ports exposed by the results module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the results service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new results module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit:      opts.HardLimit,
		DefaultCeiling: opts.DefaultCeiling,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "results" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
