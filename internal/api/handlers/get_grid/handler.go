package get_grid

import (
	"net/http"
	"strconv"

	"github.com/m04kA/Salon-ReservationService/internal/api/handlers"
)

type Handler struct {
	service GridService
	logger  Logger
}

func NewHandler(service GridService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.GetSnapshot(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to load grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Версия дублируется в ETag, чтобы клиент мог вернуть её в If-Match
	w.Header().Set("ETag", strconv.FormatInt(snap.Version, 10))

	h.logger.Info("GET /reservations - Snapshot served: version=%d", snap.Version)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}
