package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
	"github.com/m04kA/Salon-ReservationService/pkg/ptr"
)

type fakeRepo struct {
	stored *gridRepo.StoredGrid
}

func (f *fakeRepo) Load(_ context.Context) (*gridRepo.StoredGrid, error) {
	if f.stored == nil {
		return nil, gridRepo.ErrGridNotFound
	}
	return &gridRepo.StoredGrid{Grid: f.stored.Grid.Clone(), Version: f.stored.Version}, nil
}

func (f *fakeRepo) Save(_ context.Context, g domain.SlotGrid, expectedVersion int64) (int64, error) {
	if f.stored == nil || f.stored.Version != expectedVersion {
		return 0, gridRepo.ErrVersionConflict
	}
	f.stored = &gridRepo.StoredGrid{Grid: g.Clone(), Version: expectedVersion + 1}
	return f.stored.Version, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	published []int64
}

func (f *fakeNotifier) Publish(_ domain.SlotGrid, version int64) {
	f.published = append(f.published, version)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// wednesdayMorning среда 10:00, до часа отсечки
// Неделя: понедельник 09.06.2025 - суббота 14.06.2025
var wednesdayMorning = time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeRepo, notifier *fakeNotifier, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakeTxManager{}, notifier, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func seedGrid(t *testing.T, day domain.Weekday, slot domain.TimeSlot, name string, service domain.ServiceKind, groupID string) domain.SlotGrid {
	t.Helper()
	g, err := domain.NewSlotGrid().Reserve(day, slot, name, service, groupID)
	require.NoError(t, err)
	return g
}

func TestExecute_CancelMakeup(t *testing.T) {
	slots := domain.TimeSlots()
	seeded := seedGrid(t, domain.Friday, slots[2], "Anna", domain.ServiceMakeup, "")

	repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: seeded, Version: 4}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier, wednesdayMorning)

	resp, err := uc.Execute(context.Background(), &Request{Day: domain.Friday, Slot: slots[2]})
	require.NoError(t, err)

	assert.True(t, resp.Grid.At(domain.Friday, slots[2]).IsEmpty())
	assert.Equal(t, "Anna", resp.Cancelled.Name)
	assert.Equal(t, int64(5), resp.Version)
	assert.Equal(t, []int64{5}, notifier.published)
	require.NoError(t, resp.Grid.Validate(), "grid stays dense after cancellation")
}

func TestExecute_CancelStylingClearsBothSlots(t *testing.T) {
	slots := domain.TimeSlots()
	seeded := seedGrid(t, domain.Friday, slots[2], "Marina", domain.ServiceStyling, "group-1")

	repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: seeded, Version: 1}}
	uc := newTestUseCase(repo, &fakeNotifier{}, wednesdayMorning)

	resp, err := uc.Execute(context.Background(), &Request{Day: domain.Friday, Slot: slots[2]})
	require.NoError(t, err)

	assert.True(t, resp.Grid.At(domain.Friday, slots[2]).IsEmpty())
	assert.True(t, resp.Grid.At(domain.Friday, slots[3]).IsEmpty(), "paired slot is released in the same mutation")
	assert.Equal(t, domain.ServiceStyling, resp.Cancelled.Service)
	assert.Equal(t, "group-1", resp.Cancelled.GroupID)
}

func TestExecute_CancelStylingKeepsForeignNeighbour(t *testing.T) {
	slots := domain.TimeSlots()
	seeded := seedGrid(t, domain.Friday, slots[2], "Marina", domain.ServiceStyling, "group-1")
	seeded, err := seeded.Reserve(domain.Friday, slots[4], "Marina", domain.ServiceStyling, "group-2")
	require.NoError(t, err)

	repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: seeded, Version: 1}}
	uc := newTestUseCase(repo, &fakeNotifier{}, wednesdayMorning)

	// Отмена второго слота первой пары: сосед с другим groupID остается
	resp, err := uc.Execute(context.Background(), &Request{Day: domain.Friday, Slot: slots[3]})
	require.NoError(t, err)

	assert.True(t, resp.Grid.At(domain.Friday, slots[3]).IsEmpty())
	assert.Equal(t, "group-2", resp.Grid.At(domain.Friday, slots[4]).GroupID,
		"same client name is not enough to cascade into a different booking")
}

func TestExecute_EmptySlot(t *testing.T) {
	repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: domain.NewSlotGrid(), Version: 1}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier, wednesdayMorning)

	_, err := uc.Execute(context.Background(), &Request{Day: domain.Friday, Slot: domain.TimeSlots()[0]})
	require.ErrorIs(t, err, ErrEmptySlot)
	assert.Empty(t, notifier.published)
}

func TestExecute_GridNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeNotifier{}, wednesdayMorning)

	_, err := uc.Execute(context.Background(), &Request{Day: domain.Friday, Slot: domain.TimeSlots()[0]})
	require.ErrorIs(t, err, ErrGridNotFound)
}

func TestExecute_ModificationPolicy(t *testing.T) {
	slots := domain.TimeSlots()

	tests := []struct {
		name    string
		now     time.Time
		day     domain.Weekday
		isAdmin bool
		wantErr error
	}{
		{
			name:    "today after cutoff",
			now:     time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC),
			day:     domain.Wednesday,
			wantErr: ErrForbidden,
		},
		{
			name:    "tomorrow is always closed",
			now:     wednesdayMorning,
			day:     domain.Thursday,
			wantErr: ErrForbidden,
		},
		{
			name:    "admin bypasses the cutoff",
			now:     time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC),
			day:     domain.Wednesday,
			isAdmin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeded := seedGrid(t, tt.day, slots[0], "Anna", domain.ServiceMakeup, "")
			repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: seeded, Version: 1}}
			uc := newTestUseCase(repo, &fakeNotifier{}, tt.now)

			_, err := uc.Execute(context.Background(), &Request{
				Day:     tt.day,
				Slot:    slots[0],
				IsAdmin: tt.isAdmin,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExecute_StaleObservedVersion(t *testing.T) {
	slots := domain.TimeSlots()
	seeded := seedGrid(t, domain.Friday, slots[0], "Anna", domain.ServiceMakeup, "")

	repo := &fakeRepo{stored: &gridRepo.StoredGrid{Grid: seeded, Version: 9}}
	uc := newTestUseCase(repo, &fakeNotifier{}, wednesdayMorning)

	_, err := uc.Execute(context.Background(), &Request{
		Day:             domain.Friday,
		Slot:            slots[0],
		ObservedVersion: ptr.Ptr(int64(8)),
	})
	require.ErrorIs(t, err, ErrStaleVersion)
}
