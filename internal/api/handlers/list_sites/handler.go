package list_sites

import (
	"net/http"

	"github.com/akimv/BarberHub-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSites(r.Context())
	if err != nil {
		h.logger.Error("GET /sites - Failed to list sites: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites - Returned %d sites", len(result.Sites))
	handlers.RespondJSON(w, http.StatusOK, result)
}
