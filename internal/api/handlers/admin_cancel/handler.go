package admin_cancel

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-ReservationService/internal/api/handlers"
	"github.com/m04kA/Salon-ReservationService/internal/api/middleware"
	adminCancel "github.com/m04kA/Salon-ReservationService/internal/usecase/admin_cancel"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "неверный административный секрет"
	msgInvalidInput       = "некорректный день недели или время слота"
	msgEmptySlot          = "выбранный слот не занят"
)

type Handler struct {
	useCase AdminCancelUseCase
	logger  Logger
}

func NewHandler(useCase AdminCancelUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdminCancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	credential := r.Header.Get(middleware.AdminSecretHeader)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(credential))
	if err != nil {
		switch {
		case errors.Is(err, adminCancel.ErrUnauthorized):
			h.logger.Warn("POST /admin/reservations/cancel - Invalid credential")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, adminCancel.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations/cancel - Invalid input: day=%s, time=%s", req.Day, req.Time)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, adminCancel.ErrEmptySlot):
			h.logger.Warn("POST /admin/reservations/cancel - Slot is empty: day=%s, time=%s", req.Day, req.Time)
			handlers.RespondConflict(w, msgEmptySlot)

		default:
			h.logger.Error("POST /admin/reservations/cancel - Failed to cancel: day=%s, time=%s, error=%v",
				req.Day, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations/cancel - Reservation cancelled: day=%s, slot=%s, client=%s, version=%d",
		result.Day, result.Slot, result.Cancelled.Name, result.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
