package admin_cancel

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
	"github.com/m04kA/Salon-ReservationService/pkg/types"
)

// UseCase use case административной отмены брони
// Секрет проверяется на каждый запрос, результат проверки действует
// только внутри этого вызова - никакого постоянного признака администратора
type UseCase struct {
	cancelUC CancelReservationUseCase
	secret   string
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cancelUC CancelReservationUseCase, secret string, logger Logger) *UseCase {
	return &UseCase{
		cancelUC: cancelUC,
		secret:   secret,
		logger:   logger,
	}
}

// Execute выполняет use case административной отмены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminCancel: day=%s, time=%s", req.Day, req.TimePrefix)

	// 1. Проверяем секрет до любых других проверок
	if subtle.ConstantTimeCompare([]byte(req.Credential), []byte(uc.secret)) != 1 {
		uc.logger.Warn("AdminCancel: invalid credential")
		return nil, ErrUnauthorized
	}

	// 2. Валидация словаря: день и время начала слота
	day, err := domain.ParseWeekday(req.Day)
	if err != nil {
		uc.logger.Warn("AdminCancel: unknown weekday %q", req.Day)
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}

	start, err := types.NewTimeStringFromString(req.TimePrefix)
	if err != nil {
		uc.logger.Warn("AdminCancel: invalid time %q", req.TimePrefix)
		return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.TimePrefix)
	}

	slot, ok := domain.FindTimeSlotByStart(start)
	if !ok {
		uc.logger.Warn("AdminCancel: no slot starts at %q", req.TimePrefix)
		return nil, fmt.Errorf("%w: no slot starts at %q", ErrInvalidInput, req.TimePrefix)
	}

	// 3. Переиспользуем примитив отмены с проверенным административным правом:
	// политика дат обходится, каскад парного слота сохраняется
	result, err := uc.cancelUC.Execute(ctx, &cancelReservation.Request{
		Day:     day,
		Slot:    slot,
		IsAdmin: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrEmptySlot),
			errors.Is(err, cancelReservation.ErrGridNotFound):
			uc.logger.Warn("AdminCancel: nothing to cancel at %s %s", day, slot)
			return nil, fmt.Errorf("%w: %s %s", ErrEmptySlot, day, slot)
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("AdminCancel: cancel failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("AdminCancel: cancelled day=%s slot=%s client=%s version=%d",
		day, slot, result.Cancelled.Name, result.Version)

	return &Response{
		Grid:      result.Grid,
		Version:   result.Version,
		Day:       day,
		Slot:      slot,
		Cancelled: result.Cancelled,
	}, nil
}
