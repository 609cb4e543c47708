package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ByLanguage(ctx context.Context, in ByLanguageInput) ([]ByLanguageRow, error)
	Daily(ctx context.Context, in DailyInput) ([]DailyRow, error)
	Confidence(ctx context.Context, in ConfidenceInput) ([]ConfidenceRow, error)
	LowConfidence(ctx context.Context, in LowConfidenceInput) (LowConfidenceResponse, error)
}
