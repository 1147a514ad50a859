package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
	scheduleRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/schedule"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

type stubCatalogRepo struct {
	service     *domain.Service
	serviceErr  error
	employee    *domain.Employee
	employeeErr error
}

func (s *stubCatalogRepo) GetService(_ context.Context, _, _ uuid.UUID) (*domain.Service, error) {
	return s.service, s.serviceErr
}

func (s *stubCatalogRepo) GetEmployee(_ context.Context, _, _ uuid.UUID) (*domain.Employee, error) {
	return s.employee, s.employeeErr
}

type stubScheduleRepo struct {
	schedule *domain.Schedule
	err      error
}

func (s *stubScheduleRepo) GetByBarbershop(_ context.Context, _ uuid.UUID) (*domain.Schedule, error) {
	return s.schedule, s.err
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	called       bool
}

func (s *stubAppointmentRepo) GetActiveByEmployeeAndDate(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	s.called = true
	return s.appointments, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

// Среда, рабочий день расписания ниже
var testDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

func testSchedule(t *testing.T) *domain.Schedule {
	t.Helper()
	return &domain.Schedule{
		ID:           uuid.New(),
		BarbershopID: uuid.New(),
		DaysOfWeek:   []int{1, 2, 3, 4, 5},
		OpenTime:     mustTime(t, "09:00"),
		CloseTime:    mustTime(t, "17:00"),
		Breaks: []domain.Break{
			{StartTime: mustTime(t, "12:00"), EndTime: mustTime(t, "13:00")},
		},
	}
}

func testRequest() *Request {
	return &Request{
		BarbershopID: uuid.New(),
		EmployeeID:   uuid.New(),
		ServiceID:    uuid.New(),
		Date:         testDate,
	}
}

func TestExecute_HappyPath(t *testing.T) {
	catalog := &stubCatalogRepo{
		service:  &domain.Service{ID: uuid.New(), Name: "Стрижка", DurationMinutes: 60},
		employee: &domain.Employee{ID: uuid.New(), Name: "Мастер"},
	}
	schedules := &stubScheduleRepo{schedule: testSchedule(t)}
	appointments := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              uuid.New(),
				StartTime:       mustTime(t, "10:00"),
				DurationMinutes: 30,
				Status:          domain.StatusPending,
			},
		},
	}

	uc := NewUseCase(catalog, schedules, appointments, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	expected := []string{
		"09:00", "10:30", "11:00",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
	}
	got := make([]string, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		got = append(got, slot.String())
	}
	assert.Equal(t, expected, got)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_CancelledAppointmentsDoNotBlock(t *testing.T) {
	catalog := &stubCatalogRepo{
		service:  &domain.Service{ID: uuid.New(), DurationMinutes: 60},
		employee: &domain.Employee{ID: uuid.New()},
	}
	schedules := &stubScheduleRepo{schedule: testSchedule(t)}
	appointments := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              uuid.New(),
				StartTime:       mustTime(t, "10:00"),
				DurationMinutes: 30,
				Status:          domain.StatusCancelled,
			},
		},
	}

	uc := NewUseCase(catalog, schedules, appointments, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	got := make([]string, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		got = append(got, slot.String())
	}
	assert.Contains(t, got, "10:00")
	assert.Contains(t, got, "10:30")
}

func TestExecute_NonWorkingDay(t *testing.T) {
	schedule := testSchedule(t)
	schedule.DaysOfWeek = []int{6} // только суббота

	catalog := &stubCatalogRepo{
		service:  &domain.Service{ID: uuid.New(), DurationMinutes: 60},
		employee: &domain.Employee{ID: uuid.New()},
	}
	schedules := &stubScheduleRepo{schedule: schedule}
	appointments := &stubAppointmentRepo{}

	uc := NewUseCase(catalog, schedules, appointments, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotNil(t, resp.AvailableSlots)
	assert.Empty(t, resp.AvailableSlots)
	assert.False(t, appointments.called, "appointments must not be loaded on a non-working day")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &stubCatalogRepo{serviceErr: catalogRepo.ErrServiceNotFound}

	uc := NewUseCase(catalog, &stubScheduleRepo{}, &stubAppointmentRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	catalog := &stubCatalogRepo{
		service:     &domain.Service{ID: uuid.New(), DurationMinutes: 60},
		employeeErr: catalogRepo.ErrEmployeeNotFound,
	}

	uc := NewUseCase(catalog, &stubScheduleRepo{}, &stubAppointmentRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	catalog := &stubCatalogRepo{
		service:  &domain.Service{ID: uuid.New(), DurationMinutes: 60},
		employee: &domain.Employee{ID: uuid.New()},
	}
	schedules := &stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound}

	uc := NewUseCase(catalog, schedules, &stubAppointmentRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(&stubCatalogRepo{}, &stubScheduleRepo{}, &stubAppointmentRepo{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "nil barbershop", mutate: func(r *Request) { r.BarbershopID = uuid.Nil }},
		{name: "nil employee", mutate: func(r *Request) { r.EmployeeID = uuid.Nil }},
		{name: "nil service", mutate: func(r *Request) { r.ServiceID = uuid.Nil }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_Deterministic(t *testing.T) {
	catalog := &stubCatalogRepo{
		service:  &domain.Service{ID: uuid.New(), DurationMinutes: 60},
		employee: &domain.Employee{ID: uuid.New()},
	}
	schedules := &stubScheduleRepo{schedule: testSchedule(t)}
	appointments := &stubAppointmentRepo{}

	uc := NewUseCase(catalog, schedules, appointments, noopLogger{})
	req := testRequest()

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.AvailableSlots, second.AvailableSlots)
}
