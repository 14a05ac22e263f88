package admin_cancel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
)

const testSecret = "acro-yoga"

type fakeCancelUseCase struct {
	gotReq *cancelReservation.Request
	resp   *cancelReservation.Response
	err    error
}

func (f *fakeCancelUseCase) Execute(_ context.Context, req *cancelReservation.Request) (*cancelReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_DelegatesWithVerifiedAdminGrant(t *testing.T) {
	slots := domain.TimeSlots()
	cancelled := domain.Reservation{Name: "Marina", Service: domain.ServiceStyling, GroupID: "group-1"}
	fake := &fakeCancelUseCase{
		resp: &cancelReservation.Response{
			Grid:      domain.NewSlotGrid(),
			Version:   3,
			Cancelled: cancelled,
		},
	}
	uc := NewUseCase(fake, testSecret, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Credential: testSecret,
		Day:        "fri",
		TimePrefix: "19:00",
	})
	require.NoError(t, err)

	require.NotNil(t, fake.gotReq)
	assert.True(t, fake.gotReq.IsAdmin, "delegated request carries the verified grant")
	assert.Equal(t, domain.Friday, fake.gotReq.Day)
	assert.Equal(t, slots[12], fake.gotReq.Slot, "19:00 resolves to the 19:00-19:10 slot")

	assert.Equal(t, int64(3), resp.Version)
	assert.Equal(t, cancelled, resp.Cancelled)
	assert.Equal(t, domain.Friday, resp.Day)
	assert.Equal(t, slots[12], resp.Slot)
}

func TestExecute_InvalidCredential(t *testing.T) {
	fake := &fakeCancelUseCase{}
	uc := NewUseCase(fake, testSecret, nopLogger{})

	for _, credential := range []string{"", "wrong", "acro-yoga "} {
		_, err := uc.Execute(context.Background(), &Request{
			Credential: credential,
			Day:        "fri",
			TimePrefix: "19:00",
		})
		require.ErrorIs(t, err, ErrUnauthorized)
	}
	assert.Nil(t, fake.gotReq, "the cancel primitive is never reached without the secret")
}

func TestExecute_InvalidVocabulary(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "unknown weekday",
			req:  &Request{Credential: testSecret, Day: "sun", TimePrefix: "19:00"},
		},
		{
			name: "malformed time",
			req:  &Request{Credential: testSecret, Day: "fri", TimePrefix: "7pm"},
		},
		{
			name: "time outside the service window",
			req:  &Request{Credential: testSecret, Day: "fri", TimePrefix: "16:00"},
		},
		{
			name: "time not on a slot boundary",
			req:  &Request{Credential: testSecret, Day: "fri", TimePrefix: "19:05"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeCancelUseCase{}, testSecret, nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EmptySlot(t *testing.T) {
	fake := &fakeCancelUseCase{err: cancelReservation.ErrEmptySlot}
	uc := NewUseCase(fake, testSecret, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Credential: testSecret,
		Day:        "fri",
		TimePrefix: "19:00",
	})
	require.ErrorIs(t, err, ErrEmptySlot)
}

func TestExecute_NothingPersistedYet(t *testing.T) {
	fake := &fakeCancelUseCase{err: cancelReservation.ErrGridNotFound}
	uc := NewUseCase(fake, testSecret, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Credential: testSecret,
		Day:        "fri",
		TimePrefix: "19:00",
	})
	require.ErrorIs(t, err, ErrEmptySlot)
}
