package make_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-ReservationService/internal/api/handlers"
	"github.com/m04kA/Salon-ReservationService/internal/api/middleware"
	makeReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/make_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный день, слот, имя клиента или услуга"
	msgForbidden          = "изменение расписания на эту дату сейчас недоступно"
	msgSlotOccupied       = "выбранный слот уже занят"
	msgNoConsecutiveSlot  = "для укладки нужен следующий слот, а это последний слот дня"
	msgStaleVersion       = "расписание изменилось, обновите его и повторите попытку"
)

type Handler struct {
	useCase MakeReservationUseCase
	logger  Logger
}

func NewHandler(useCase MakeReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MakeReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Административное право выдается middleware на время этого запроса
	useCaseReq := req.ToUseCaseRequest(middleware.IsAdmin(r.Context()))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, makeReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: day=%s, slot=%s, service=%s",
				req.Day, req.TimeSlot, req.Service)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, makeReservation.ErrForbidden):
			h.logger.Warn("POST /reservations - Modification forbidden: day=%s", req.Day)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, makeReservation.ErrSlotOccupied):
			h.logger.Warn("POST /reservations - Slot occupied: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, makeReservation.ErrNoConsecutiveSlot):
			h.logger.Warn("POST /reservations - No consecutive slot: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgNoConsecutiveSlot)

		case errors.Is(err, makeReservation.ErrStaleVersion):
			h.logger.Warn("POST /reservations - Stale version: day=%s, slot=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgStaleVersion)

		default:
			h.logger.Error("POST /reservations - Failed to make reservation: day=%s, slot=%s, error=%v",
				req.Day, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: day=%s, slot=%s, version=%d",
		req.Day, req.TimeSlot, result.Version)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
