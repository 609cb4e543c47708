package repokit

import (
	"context"
	"fmt"
	"time"
)

type guarder interface {
	Guard(context.Context) error
}

type pinger interface {
	Ping(context.Context) error
}

// MustPing panics unless dep answers a Ping within timeout. The seams are
// typed as TxRunner/Clickhouse, so dep is asserted to a pinger here; a
// dependency that cannot ping at all is a wiring bug and also panics
func MustPing(ctx context.Context, name string, dep any) {
	if dep == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	p, ok := dep.(pinger)
	if !ok {
		panic(fmt.Sprintf("%s: dependency cannot ping", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard runs store.Guard and panics on any error (nice for service startup)
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
