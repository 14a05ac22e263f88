package replace_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Salon-ReservationService/internal/api/handlers"
	gridService "github.com/m04kA/Salon-ReservationService/internal/service/grid"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGrid        = "сетка не проходит структурную проверку"
	msgStaleVersion       = "расписание изменилось, обновите его и повторите попытку"
	msgInvalidIfMatch     = "некорректный заголовок If-Match"
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

// Handle PUT /api/v1/reservations
// Маршрут защищен middleware.RequireAdmin: сюда попадают только запросы
// с проверенным административным секретом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReplaceGridRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Версию можно передать и через If-Match (парный к ETag из GET)
	if req.ExpectedVersion == nil {
		if etag := r.Header.Get("If-Match"); etag != "" {
			version, err := strconv.ParseInt(etag, 10, 64)
			if err != nil {
				h.logger.Warn("PUT /reservations - Invalid If-Match header: %q", etag)
				handlers.RespondBadRequest(w, msgInvalidIfMatch)
				return
			}
			req.ExpectedVersion = &version
		}
	}

	snap, err := h.service.Replace(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, gridService.ErrInvalidGrid):
			h.logger.Warn("PUT /reservations - Invalid grid: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGrid)

		case errors.Is(err, gridService.ErrStaleVersion):
			h.logger.Warn("PUT /reservations - Stale version")
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("PUT /reservations - Failed to replace grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("ETag", strconv.FormatInt(snap.Version, 10))

	h.logger.Info("PUT /reservations - Grid replaced: version=%d", snap.Version)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}
