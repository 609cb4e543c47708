package module

import (
	"context"

	"lipi/internal/services/api/stats/domain"
	statssvc "lipi/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStatsPort adapts the stats service to the domain port interface
type adaptStatsPort struct{ svc statssvc.Service }

// ByLanguage returns the language distribution for a day range
func (a adaptStatsPort) ByLanguage(ctx context.Context, in domain.ByLanguageInput) ([]domain.ByLanguageRow, error) {
	return a.svc.ByLanguage(ctx, in)
}

// Daily returns entry volume per day and language
func (a adaptStatsPort) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	return a.svc.Daily(ctx, in)
}

// Confidence returns the confidence histogram
func (a adaptStatsPort) Confidence(ctx context.Context, in domain.ConfidenceInput) ([]domain.ConfidenceRow, error) {
	return a.svc.Confidence(ctx, in)
}

// LowConfidence counts entries under a confidence ceiling
func (a adaptStatsPort) LowConfidence(
	ctx context.Context,
	in domain.LowConfidenceInput,
) (domain.LowConfidenceResponse, error) {
	return a.svc.LowConfidence(ctx, in)
}
