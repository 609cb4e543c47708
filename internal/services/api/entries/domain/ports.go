package domain

import "context"

// ServicePort defines the service contract for the entries API
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (SubmitResponse, error)
	Recent(ctx context.Context, in RecentInput) ([]RecentRow, error)
}
