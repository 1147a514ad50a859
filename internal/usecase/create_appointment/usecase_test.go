package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
)

type stubCatalogRepo struct {
	barbershop    *domain.Barbershop
	barbershopErr error
	service       *domain.Service
	serviceErr    error
	employee      *domain.Employee
	employeeErr   error
}

func (s *stubCatalogRepo) GetBarbershop(_ context.Context, _ uuid.UUID) (*domain.Barbershop, error) {
	return s.barbershop, s.barbershopErr
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
	existing  []*domain.Appointment
	created   *domain.Appointment
	createErr error
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubAppointmentRepo) GetActiveByEmployeeAndDate(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return s.existing, nil
}

// stubTxManager выполняет функцию без реальной транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Среда, рабочий день расписания ниже
var testDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	owner        uuid.UUID
	catalog      *stubCatalogRepo
	schedules    *stubScheduleRepo
	appointments *stubAppointmentRepo
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	owner := uuid.New()
	catalog := &stubCatalogRepo{
		barbershop: &domain.Barbershop{ID: uuid.New(), OwnerID: owner},
		service:    &domain.Service{ID: uuid.New(), Name: "Стрижка", Price: 1500, DurationMinutes: 60},
		employee:   &domain.Employee{ID: uuid.New(), Name: "Мастер"},
	}
	schedules := &stubScheduleRepo{
		schedule: &domain.Schedule{
			DaysOfWeek: []int{1, 2, 3, 4, 5},
			OpenTime:   mustTime(t, "09:00"),
			CloseTime:  mustTime(t, "17:00"),
			Breaks: []domain.Break{
				{StartTime: mustTime(t, "12:00"), EndTime: mustTime(t, "13:00")},
			},
		},
	}
	appointments := &stubAppointmentRepo{}

	uc := NewUseCase(appointments, catalog, schedules, stubTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testDate}

	return &fixture{
		owner:        owner,
		catalog:      catalog,
		schedules:    schedules,
		appointments: appointments,
		uc:           uc,
	}
}

func (f *fixture) request(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserID:        f.owner,
		BarbershopID:  f.catalog.barbershop.ID,
		EmployeeID:    f.catalog.employee.ID,
		ServiceID:     f.catalog.service.ID,
		ClientName:    "Иван Петров",
		ClientContact: "+79991234567",
		Date:          testDate,
		StartTime:     mustTime(t, "10:00"),
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(t))
	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)

	appt := resp.Appointment
	assert.NotEqual(t, uuid.Nil, appt.ID)
	assert.Equal(t, domain.StatusPending, appt.Status)
	assert.Equal(t, "10:00", appt.StartTime.String())
	assert.Equal(t, 60, appt.DurationMinutes)
	// Данные услуги денормализуются на момент записи
	assert.Equal(t, "Стрижка", appt.ServiceName)
	assert.Equal(t, 1500.0, appt.ServicePrice)
}

func TestExecute_SlotTakenByActiveAppointment(t *testing.T) {
	f := newFixture(t)
	f.appointments.existing = []*domain.Appointment{
		{StartTime: mustTime(t, "10:00"), DurationMinutes: 30, Status: domain.StatusPending},
	}

	_, err := f.uc.Execute(context.Background(), f.request(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_SlotFreedByCancellation(t *testing.T) {
	f := newFixture(t)
	f.appointments.existing = []*domain.Appointment{
		{StartTime: mustTime(t, "10:00"), DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), f.request(t))
	assert.NoError(t, err)
}

func TestExecute_NotOwner(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.UserID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(t)
	f.schedules.schedule.DaysOfWeek = []int{6}

	_, err := f.uc.Execute(context.Background(), f.request(t))
	assert.ErrorIs(t, err, ErrBarbershopClosed)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.Date = testDate.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BarbershopNotFound(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	f.catalog.barbershop = nil
	f.catalog.barbershopErr = catalogRepo.ErrBarbershopNotFound

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarbershopNotFound)
}

func TestExecute_MisalignedStartTime(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.StartTime = mustTime(t, "10:15")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
