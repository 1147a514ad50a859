package appointments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	appointmentRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/appointment"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/appointments/models"
)

type stubAppointmentRepo struct {
	appointment   *domain.Appointment
	getErr        error
	updatedStatus domain.AppointmentStatus
	updateErr     error
	listed        []*domain.Appointment
	total         int64
	listFilter    domain.AppointmentsFilter
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Appointment, error) {
	return s.appointment, s.getErr
}

func (s *stubAppointmentRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.AppointmentStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedStatus = status
	return nil
}

func (s *stubAppointmentRepo) ListByBarbershop(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	s.listFilter = filter
	return s.listed, s.total, nil
}

type stubCatalogRepo struct {
	barbershop *domain.Barbershop
	err        error
}

func (s *stubCatalogRepo) GetBarbershop(_ context.Context, _ uuid.UUID) (*domain.Barbershop, error) {
	return s.barbershop, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(owner uuid.UUID, appt *domain.Appointment) (*Service, *stubAppointmentRepo) {
	repo := &stubAppointmentRepo{appointment: appt}
	catalog := &stubCatalogRepo{barbershop: &domain.Barbershop{ID: uuid.New(), OwnerID: owner}}
	return NewService(repo, catalog, noopLogger{}), repo
}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:           uuid.New(),
		BarbershopID: uuid.New(),
		Status:       domain.StatusPending,
	}
}

func TestUpdateStatus_CompletesPending(t *testing.T) {
	owner := uuid.New()
	appt := pendingAppointment()
	svc, repo := newTestService(owner, appt)

	updated, err := svc.UpdateStatus(context.Background(), owner, appt.ID, domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_CancelsPending(t *testing.T) {
	owner := uuid.New()
	appt := pendingAppointment()
	svc, _ := newTestService(owner, appt)

	updated, err := svc.UpdateStatus(context.Background(), owner, appt.ID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestUpdateStatus_FinalStatusesAreImmutable(t *testing.T) {
	owner := uuid.New()

	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			appt := pendingAppointment()
			appt.Status = status
			svc, _ := newTestService(owner, appt)

			_, err := svc.UpdateStatus(context.Background(), owner, appt.ID, domain.StatusPending)
			assert.ErrorIs(t, err, ErrStatusTransition)
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	owner := uuid.New()
	svc, _ := newTestService(owner, pendingAppointment())

	_, err := svc.UpdateStatus(context.Background(), owner, uuid.New(), "DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotOwner(t *testing.T) {
	appt := pendingAppointment()
	svc, _ := newTestService(uuid.New(), appt)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), appt.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	owner := uuid.New()
	repo := &stubAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	catalog := &stubCatalogRepo{barbershop: &domain.Barbershop{OwnerID: owner}}
	svc := NewService(repo, catalog, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), owner, uuid.New(), domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_DefaultsPageAndLimit(t *testing.T) {
	owner := uuid.New()
	repo := &stubAppointmentRepo{total: 42}
	catalog := &stubCatalogRepo{barbershop: &domain.Barbershop{OwnerID: owner}}
	svc := NewService(repo, catalog, noopLogger{})

	result, err := svc.List(context.Background(), &models.ListRequest{
		UserID:       owner,
		BarbershopID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, domain.DefaultPageLimit, result.Limit)
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, domain.DefaultPageLimit, repo.listFilter.Limit)
}
