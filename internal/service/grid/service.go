package grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

// Service сервис для работы с недельной сеткой как с целым:
// чтение снимка, полная замена, рассылка изменений подписчикам
type Service struct {
	repo      GridRepository
	txManager TransactionManager
	hub       *Hub
	logger    Logger
}

// NewService создает новый экземпляр сервиса сетки
func NewService(
	repo GridRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		hub:       NewHub(),
		logger:    logger,
	}
}

// GetSnapshot возвращает текущий снимок сетки
// Если сетка еще не сохранялась, инициализирует её плотной пустой сеткой
func (s *Service) GetSnapshot(ctx context.Context) (*models.Snapshot, error) {
	stored, err := s.repo.Load(ctx)
	if errors.Is(err, gridRepo.ErrGridNotFound) {
		s.logger.Info("GetSnapshot: grid not found, seeding empty grid")
		stored, err = s.repo.Init(ctx, domain.NewSlotGrid())
	}
	if err != nil {
		s.logger.Error("GetSnapshot: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSnapshot - repository error: %v", ErrInternal, err)
	}

	return &models.Snapshot{Grid: stored.Grid, Version: stored.Version}, nil
}

// Replace полностью заменяет сетку переданным снимком
// Проверяет структурные инварианты и, если клиент указал наблюдавшуюся версию,
// применяет замену только при её совпадении с текущей
// Подписчики уведомляются после фиксации транзакции
func (s *Service) Replace(ctx context.Context, req *models.ReplaceRequest) (*models.Snapshot, error) {
	s.logger.Info("Replace: replacing grid, expectedVersion=%v", req.ExpectedVersion)

	if err := req.Grid.Validate(); err != nil {
		s.logger.Warn("Replace: grid validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	var result models.Snapshot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stored, err := s.repo.Load(txCtx)
		if errors.Is(err, gridRepo.ErrGridNotFound) {
			stored, err = s.repo.Init(txCtx, domain.NewSlotGrid())
		}
		if err != nil {
			return fmt.Errorf("%w: Replace - load grid: %v", ErrInternal, err)
		}

		if req.ExpectedVersion != nil && *req.ExpectedVersion != stored.Version {
			s.logger.Warn("Replace: stale version, observed=%d current=%d",
				*req.ExpectedVersion, stored.Version)
			return ErrStaleVersion
		}

		newVersion, err := s.repo.Save(txCtx, req.Grid, stored.Version)
		if err != nil {
			if errors.Is(err, gridRepo.ErrVersionConflict) {
				return ErrStaleVersion
			}
			return fmt.Errorf("%w: Replace - save grid: %v", ErrInternal, err)
		}

		result = models.Snapshot{Grid: req.Grid, Version: newVersion}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replace: grid replaced, version=%d", result.Version)
	s.hub.Broadcast(result)
	return &result, nil
}

// Publish рассылает подписчикам снимок, принятый другим компонентом
// Вызывается usecase-ами после успешной фиксации мутации
func (s *Service) Publish(g domain.SlotGrid, version int64) {
	s.hub.Broadcast(models.Snapshot{Grid: g, Version: version})
}

// Subscribe регистрирует подписчика на снимки сетки
func (s *Service) Subscribe() (<-chan models.Snapshot, func()) {
	return s.hub.Subscribe()
}
