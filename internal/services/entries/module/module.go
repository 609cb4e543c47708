// Package module provides the entries module
package module

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/modkit/repokit"
	"lipi/internal/services/entries/domain"
	"lipi/internal/services/entries/repo"
	"lipi/internal/services/entries/service"
)

// Ports exposed by the entries module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new entries module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	db := repokit.TxRunner(deps.PG)
	if d, err := time.ParseDuration(opts.TxTimeout); err == nil && d > 0 {
		// SET LOCAL scopes the timeout to the tx, so a stuck batch insert
		// cannot hold its locks past the bound
		hook := func(ctx context.Context, q repokit.Queryer) error {
			_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds()))
			return err
		}
		db = repokit.WithBeginHooks(db, hook)
	}
	svc := service.New(db, binder, service.Config{
		HardLimit:    opts.HardLimit,
		MaxTextBytes: opts.MaxTextBytes,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Writer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "entries" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
