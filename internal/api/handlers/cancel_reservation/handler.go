package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-ReservationService/internal/api/handlers"
	"github.com/m04kA/Salon-ReservationService/internal/api/middleware"
	cancelReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный день недели или слот"
	msgForbidden          = "изменение расписания на эту дату сейчас недоступно"
	msgEmptySlot          = "выбранный слот не занят"
	msgStaleVersion       = "расписание изменилось, обновите его и повторите попытку"
	msgGridNotFound       = "расписание еще не создано"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest(middleware.IsAdmin(r.Context()))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/cancel - Invalid input: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelReservation.ErrForbidden):
			h.logger.Warn("POST /reservations/cancel - Modification forbidden: day=%s", req.Day)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelReservation.ErrEmptySlot):
			h.logger.Warn("POST /reservations/cancel - Slot is empty: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgEmptySlot)

		case errors.Is(err, cancelReservation.ErrGridNotFound):
			h.logger.Warn("POST /reservations/cancel - Grid not found")
			handlers.RespondNotFound(w, msgGridNotFound)

		case errors.Is(err, cancelReservation.ErrStaleVersion):
			h.logger.Warn("POST /reservations/cancel - Stale version: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel: day=%s, slot=%s, error=%v",
				req.Day, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservation cancelled: day=%s, slot=%s, client=%s, version=%d",
		req.Day, req.TimeSlot, result.Cancelled.Name, result.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
