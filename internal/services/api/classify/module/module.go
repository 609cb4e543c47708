// Package module wires ad-hoc classification into the API using modkit
package module

import (
	"net/http"

	modkit "lipi/internal/modkit"
	"lipi/internal/modkit/httpkit"
	"lipi/internal/platform/metrics"
	str "lipi/internal/platform/strings"
	classifyhttp "lipi/internal/services/api/classify/http"
	classifysvc "lipi/internal/services/api/classify/service"
	clsdom "lipi/internal/services/classify/domain"
)

// Ports are the upstream dependencies injected via modkit.WithPorts
type Ports struct {
	Classifier clsdom.ClassifyPort // required
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

	svc *classifysvc.Svc
}

// New constructs a classify API module. The cache comes from deps.RD and may
// be nil, which disables caching without branching anywhere else
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("classify"), modkit.WithPrefix("/classify")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok {
		panic("classify api module: expected WithPorts(classify/module.Ports)")
	}
	if in.Classifier == nil {
		panic("classify api module: Ports missing Classifier")
	}

	svc := classifysvc.New(in.Classifier, deps.RD, 0)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptClassifyPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		classifyhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// WithMetrics attaches the cache hit and miss counters
func (m *Module) WithMetrics(mx *metrics.Metrics) *Module {
	m.svc.Metrics = mx
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
