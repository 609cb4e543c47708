// Package http provides http transport for the entries API
package http

import (
	stdhttp "net/http"

	"lipi/internal/modkit/httpkit"
	"lipi/internal/services/api/entries/domain"
	svc "lipi/internal/services/api/entries/service"
)

// Register mounts entries endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
	httpkit.PostJSON[domain.RecentInput](r, "/recent", h.recent)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /entries Entries entriesSubmit
// @Summary Submit a journal entry and classify it inline
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Entry"
// @Success 200 type domain.SubmitResponse "ok"
// @Router /entries [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), in)
}

// swagger:route POST /entries/recent Entries entriesRecent
// @Summary Recent entries joined to their latest results
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Query"
// @Success 200 {array} domain.RecentRow "ok"
// @Router /entries/recent [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}
