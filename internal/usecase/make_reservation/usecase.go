package make_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
)

// UseCase use case создания брони
// Единственный вместе с cancel_reservation мутатор сетки: обе операции
// проходят через одну и ту же политику изменений и сохраняют парную связность
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

// Execute выполняет use case создания брони
// Все проверки выполняются до первой записи: отклоненный запрос
// не оставляет частичных мутаций
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MakeReservation: day=%s, slot=%s, service=%s, admin=%t",
		req.Day, req.Slot, req.Service, req.IsAdmin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MakeReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и разрешаем день недели в конкретную дату
	now := uc.timeProvider.Now()
	targetDate := domain.CurrentWeek(now).DateOf(req.Day)

	// 3. Политика изменений: прошлое и завтрашний день заморожены,
	// сегодня - только до 17:00, администратор обходит ограничения
	if !domain.CanModify(targetDate, now, req.IsAdmin) {
		uc.logger.Warn("MakeReservation: modification forbidden for %s (day=%s)",
			targetDate.Format(domain.DateFormat), req.Day)
		return nil, ErrForbidden
	}

	// 4. Для парной услуги оба слота связываются общим идентификатором:
	// отмена следует за ним, а не за совпадением имен
	var groupID string
	if req.Service.RequiresPairedSlot() {
		groupID = uuid.NewString()
	}

	var result Response

	// 5. Read-modify-write в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stored, err := uc.repo.Load(txCtx)
		if errors.Is(err, gridRepo.ErrGridNotFound) {
			stored, err = uc.repo.Init(txCtx, domain.NewSlotGrid())
		}
		if err != nil {
			uc.logger.Error("MakeReservation: failed to load grid: %v", err)
			return fmt.Errorf("%w: failed to load grid: %v", ErrInternal, err)
		}

		// 5.1. Optimistic concurrency: клиент принимал решение по устаревшему снимку
		if req.ObservedVersion != nil && *req.ObservedVersion != stored.Version {
			uc.logger.Warn("MakeReservation: stale version, observed=%d current=%d",
				*req.ObservedVersion, stored.Version)
			return ErrStaleVersion
		}

		// 5.2. Применяем мутацию к снимку
		newGrid, err := stored.Grid.Reserve(req.Day, req.Slot, req.ClientName, req.Service, groupID)
		if err != nil {
			return mapDomainError(err)
		}

		// 5.3. Сохраняем с защитой по версии
		newVersion, err := uc.repo.Save(txCtx, newGrid, stored.Version)
		if err != nil {
			if errors.Is(err, gridRepo.ErrVersionConflict) {
				return ErrStaleVersion
			}
			uc.logger.Error("MakeReservation: failed to save grid: %v", err)
			return fmt.Errorf("%w: failed to save grid: %v", ErrInternal, err)
		}

		result = Response{
			Grid:       newGrid,
			Version:    newVersion,
			TargetDate: targetDate,
			GroupID:    groupID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("MakeReservation: reserved day=%s slot=%s version=%d",
		req.Day, req.Slot, result.Version)

	// 6. Рассылаем принятый снимок только после фиксации
	uc.notifier.Publish(result.Grid, result.Version)

	return &result, nil
}

// mapDomainError переводит ошибки доменной модели в ошибки usecase
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSlotOccupied):
		return fmt.Errorf("%w: %v", ErrSlotOccupied, err)
	case errors.Is(err, domain.ErrNoConsecutiveSlot):
		return fmt.Errorf("%w: %v", ErrNoConsecutiveSlot, err)
	case errors.Is(err, domain.ErrUnknownWeekday),
		errors.Is(err, domain.ErrUnknownTimeSlot),
		errors.Is(err, domain.ErrInvalidReservation):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
