// Package module wires the entries API using modkit
package module

import (
	"net/http"

	modkit "lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	str "lipi/internal/platform/strings"
	entrieshttp "lipi/internal/services/api/entries/http"
	entriesrepo "lipi/internal/services/api/entries/repo"
	entriessvc "lipi/internal/services/api/entries/service"
	clsdom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// Ports are the upstream dependencies injected via modkit.WithPorts
type Ports struct {
	Entries    entdom.WriterPort   // required
	Results    resdom.WriterPort   // required
	Classifier clsdom.ClassifyPort // required
	Sink       clsdom.EventSink    // optional kafka publish on submit
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc entriessvc.Service
}

// New constructs an entries API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("entries"), modkit.WithPrefix("/entries")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok {
		panic("entries module: expected WithPorts(entries/module.Ports)")
	}
	if in.Entries == nil || in.Results == nil || in.Classifier == nil {
		panic("entries module: Ports missing Entries, Results, or Classifier")
	}

	repo := entriesrepo.NewPG()
	svc := entriessvc.New(deps.PG, repo, in.Entries, in.Results, in.Classifier, 0)
	svc.Sink = in.Sink

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptEntriesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		entrieshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
