package create_appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func validationSchedule(t *testing.T) *domain.Schedule {
	t.Helper()
	return &domain.Schedule{
		OpenTime:  mustTime(t, "09:00"),
		CloseTime: mustTime(t, "17:00"),
		Breaks: []domain.Break{
			{StartTime: mustTime(t, "12:00"), EndTime: mustTime(t, "13:00")},
		},
	}
}

func TestValidateSlot(t *testing.T) {
	schedule := validationSchedule(t)
	booked := []*domain.Appointment{
		{StartTime: mustTime(t, "10:00"), DurationMinutes: 30, Status: domain.StatusPending},
	}

	tests := []struct {
		name     string
		start    int // минуты от полуночи
		duration int
		wantErr  error
	}{
		{name: "free aligned slot", start: 540, duration: 60, wantErr: nil},
		{name: "adjacent after booked", start: 630, duration: 60, wantErr: nil},
		{name: "ends exactly at close", start: 960, duration: 60, wantErr: nil},
		{name: "off the step grid", start: 555, duration: 60, wantErr: ErrSlotNotAvailable},
		{name: "before opening", start: 510, duration: 60, wantErr: ErrSlotNotAvailable},
		{name: "runs past closing", start: 990, duration: 60, wantErr: ErrSlotNotAvailable},
		{name: "overlaps booked", start: 600, duration: 60, wantErr: ErrSlotNotAvailable},
		{name: "overlaps break", start: 690, duration: 60, wantErr: ErrSlotNotAvailable},
		{name: "starts at break end", start: 780, duration: 60, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlot(schedule, tt.start, tt.duration, booked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlot_CancelledAppointmentDoesNotBlock(t *testing.T) {
	schedule := validationSchedule(t)
	cancelled := []*domain.Appointment{
		{StartTime: mustTime(t, "10:00"), DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	err := validateSlot(schedule, 600, 30, cancelled)
	assert.NoError(t, err)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{name: "today", date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), wantErr: nil},
		{name: "tomorrow", date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), wantErr: nil},
		{name: "yesterday", date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.date, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func(t *testing.T) *Request {
		return &Request{
			UserID:        uuid.New(),
			BarbershopID:  uuid.New(),
			EmployeeID:    uuid.New(),
			ServiceID:     uuid.New(),
			ClientName:    "Иван",
			ClientContact: "+79991234567",
			Date:          time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			StartTime:     mustTime(t, "10:00"),
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid(t)))
	})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "nil user", mutate: func(r *Request) { r.UserID = uuid.Nil }},
		{name: "nil barbershop", mutate: func(r *Request) { r.BarbershopID = uuid.Nil }},
		{name: "nil employee", mutate: func(r *Request) { r.EmployeeID = uuid.Nil }},
		{name: "nil service", mutate: func(r *Request) { r.ServiceID = uuid.Nil }},
		{name: "short client name", mutate: func(r *Request) { r.ClientName = "И" }},
		{name: "short client contact", mutate: func(r *Request) { r.ClientContact = "123" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "zero start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "9:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid(t)
			tt.mutate(req)

			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
