package module

import (
	"context"

	entriesdom "lipi/internal/services/api/entries/domain"
	entriessvc "lipi/internal/services/api/entries/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptEntriesPort adapts the entries API service to the domain port interface
type adaptEntriesPort struct{ svc entriessvc.Service }

// Submit stores and classifies one entry
func (a adaptEntriesPort) Submit(
	ctx context.Context,
	in entriesdom.SubmitInput,
) (entriesdom.SubmitResponse, error) {
	return a.svc.Submit(ctx, in)
}

// Recent lists entries joined to their latest results
func (a adaptEntriesPort) Recent(
	ctx context.Context,
	in entriesdom.RecentInput,
) ([]entriesdom.RecentRow, error) {
	return a.svc.Recent(ctx, in)
}
