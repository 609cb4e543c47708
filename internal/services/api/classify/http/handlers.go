// Package http provides http transport for ad-hoc classification
package http

import (
	stdhttp "net/http"

	"lipi/internal/modkit/httpkit"
	"lipi/internal/services/api/classify/domain"
	svc "lipi/internal/services/api/classify/service"
)

// Register mounts classify endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ClassifyInput](r, "/", h.classify)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /classify Classify classifyText
// @Summary Classify one text without storing it
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Text"
// @Success 200 type domain.ClassifyResponse "ok"
// @Router /classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyInput) (any, error) {
	return h.svc.Classify(r.Context(), in)
}

// swagger:route POST /classify/batch Classify classifyBatch
// @Summary Classify up to 100 texts in one call
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Texts"
// @Success 200 type domain.BatchResponse "ok"
// @Router /classify/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.ClassifyBatch(r.Context(), in)
}
