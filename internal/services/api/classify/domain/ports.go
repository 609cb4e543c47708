package domain

import "context"

// ServicePort defines the service contract for ad-hoc classification
type ServicePort interface {
	Classify(ctx context.Context, in ClassifyInput) (ClassifyResponse, error)
	ClassifyBatch(ctx context.Context, in BatchInput) (BatchResponse, error)
}
