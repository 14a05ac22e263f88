package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
)

// UseCase use case отмены брони
// Для парной услуги каскадно освобождает второй слот пары
type UseCase struct {
	repo         GridRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo GridRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: day=%s, slot=%s, admin=%t", req.Day, req.Slot, req.IsAdmin)

	// 1. Валидация словаря
	if !req.Day.IsValid() {
		uc.logger.Warn("CancelReservation: unknown weekday %q", req.Day)
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}
	if !req.Slot.IsValid() {
		uc.logger.Warn("CancelReservation: unknown time slot %q", req.Slot)
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.Slot)
	}

	// 2. Разрешаем день недели в дату и проверяем политику
	// Создание и отмена симметричны: правило блокировки реализовано один раз
	now := uc.timeProvider.Now()
	targetDate := domain.CurrentWeek(now).DateOf(req.Day)

	if !domain.CanModify(targetDate, now, req.IsAdmin) {
		uc.logger.Warn("CancelReservation: modification forbidden for %s (day=%s)",
			targetDate.Format(domain.DateFormat), req.Day)
		return nil, ErrForbidden
	}

	var result Response

	// 3. Read-modify-write в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stored, err := uc.repo.Load(txCtx)
		if err != nil {
			if errors.Is(err, gridRepo.ErrGridNotFound) {
				return ErrGridNotFound
			}
			uc.logger.Error("CancelReservation: failed to load grid: %v", err)
			return fmt.Errorf("%w: failed to load grid: %v", ErrInternal, err)
		}

		if req.ObservedVersion != nil && *req.ObservedVersion != stored.Version {
			uc.logger.Warn("CancelReservation: stale version, observed=%d current=%d",
				*req.ObservedVersion, stored.Version)
			return ErrStaleVersion
		}

		newGrid, cancelled, err := stored.Grid.Cancel(req.Day, req.Slot)
		if err != nil {
			return mapDomainError(err)
		}

		newVersion, err := uc.repo.Save(txCtx, newGrid, stored.Version)
		if err != nil {
			if errors.Is(err, gridRepo.ErrVersionConflict) {
				return ErrStaleVersion
			}
			uc.logger.Error("CancelReservation: failed to save grid: %v", err)
			return fmt.Errorf("%w: failed to save grid: %v", ErrInternal, err)
		}

		result = Response{
			Grid:       newGrid,
			Version:    newVersion,
			TargetDate: targetDate,
			Cancelled:  cancelled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: cancelled day=%s slot=%s client=%s version=%d",
		req.Day, req.Slot, result.Cancelled.Name, result.Version)

	// 4. Рассылаем принятый снимок только после фиксации
	uc.notifier.Publish(result.Grid, result.Version)

	return &result, nil
}

// mapDomainError переводит ошибки доменной модели в ошибки usecase
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptySlot):
		return fmt.Errorf("%w: %v", ErrEmptySlot, err)
	case errors.Is(err, domain.ErrUnknownWeekday), errors.Is(err, domain.ErrUnknownTimeSlot):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
