// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"lipi/internal/modkit/httpkit"
	"lipi/internal/services/api/stats/domain"
	svc "lipi/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// language distribution in window
	httpkit.PostJSON[domain.ByLanguageInput](r, "/languages", h.byLanguage)

	// entry volume per day and language
	httpkit.PostJSON[domain.DailyInput](r, "/daily", h.daily)

	// confidence histogram
	httpkit.PostJSON[domain.ConfidenceInput](r, "/confidence", h.confidence)

	// review queue size under a ceiling
	httpkit.PostJSON[domain.LowConfidenceInput](r, "/low-confidence", h.lowConfidence)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/languages Stats statsByLanguage
// @Summary Language distribution over a day range
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ByLanguageInput true "Query"
// @Success 200 {array} domain.ByLanguageRow "ok"
// @Router /stats/languages [post]
func (h *handlers) byLanguage(r *stdhttp.Request, in domain.ByLanguageInput) (any, error) {
	return h.svc.ByLanguage(r.Context(), in)
}

// swagger:route POST /stats/daily Stats statsDaily
// @Summary Entry volume per day and language
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.DailyInput true "Query"
// @Success 200 {array} domain.DailyRow "ok"
// @Router /stats/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.DailyInput) (any, error) {
	return h.svc.Daily(r.Context(), in)
}

// swagger:route POST /stats/confidence Stats statsConfidence
// @Summary Confidence histogram in 0.1-wide buckets
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ConfidenceInput true "Query"
// @Success 200 {array} domain.ConfidenceRow "ok"
// @Router /stats/confidence [post]
func (h *handlers) confidence(r *stdhttp.Request, in domain.ConfidenceInput) (any, error) {
	return h.svc.Confidence(r.Context(), in)
}

// swagger:route POST /stats/low-confidence Stats statsLowConfidence
// @Summary Count of entries under a confidence ceiling
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.LowConfidenceInput true "Query"
// @Success 200 type domain.LowConfidenceResponse "ok"
// @Router /stats/low-confidence [post]
func (h *handlers) lowConfidence(r *stdhttp.Request, in domain.LowConfidenceInput) (any, error) {
	return h.svc.LowConfidence(r.Context(), in)
}
