package grid

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	"github.com/m04kA/Salon-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Salon-ReservationService/pkg/psqlbuilder"
)

// gridRowID сервис хранит единственную недельную сетку
const gridRowID = 1

// StoredGrid сетка вместе с версией, под которой она сохранена
type StoredGrid struct {
	Grid    domain.SlotGrid
	Version int64
}

// Repository репозиторий недельной сетки
// Сетка хранится одной строкой: JSONB-снимок плюс счетчик версии,
// который защищает read-modify-write циклы от lost update
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сетки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load читает текущую сетку и её версию
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентные
// мутации выстраивались последовательно
func (r *Repository) Load(ctx context.Context) (*StoredGrid, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("data", "version").
		From("reservation_grids").
		Where(squirrel.Eq{"id": gridRowID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var (
		data    []byte
		version int64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&data, &version)
	if err == sql.ErrNoRows {
		return nil, ErrGridNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan grid row: %v", ErrScanRow, err)
	}

	var g domain.SlotGrid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal grid: %v", ErrDecodeGrid, err)
	}

	return &StoredGrid{Grid: g, Version: version}, nil
}

// Init сохраняет начальную сетку, если строки еще нет
// Возвращает актуальное состояние (вновь созданное или уже существующее)
func (r *Repository) Init(ctx context.Context, g domain.SlotGrid) (*StoredGrid, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("%w: Init - marshal grid: %v", ErrEncodeGrid, err)
	}

	query, args, err := psqlbuilder.Insert("reservation_grids").
		Columns("id", "data", "version").
		Values(gridRowID, data, 1).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Init - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Init - execute insert: %v", ErrExecQuery, err)
	}

	return r.Load(ctx)
}

// Save записывает новую сетку, только если версия не изменилась с момента чтения
// При несовпадении версии возвращает ErrVersionConflict - вызывающий обязан
// перечитать состояние и повторить решение
func (r *Repository) Save(ctx context.Context, g domain.SlotGrid, expectedVersion int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(g)
	if err != nil {
		return 0, fmt.Errorf("%w: Save - marshal grid: %v", ErrEncodeGrid, err)
	}

	query, args, err := psqlbuilder.Update("reservation_grids").
		Set("data", data).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": gridRowID, "version": expectedVersion}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	var newVersion int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&newVersion)
	if err == sql.ErrNoRows {
		return 0, ErrVersionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	return newVersion, nil
}
