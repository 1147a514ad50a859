package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	appointmentRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/appointment"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID с проверкой, что запрашивает владелец барбершопа
func (s *Service) GetByID(ctx context.Context, userID, appointmentID uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.getOwnedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// UpdateStatus обновляет статус записи (COMPLETED / CANCELLED).
// Завершенные и отмененные записи финальны - их статус менять нельзя.
func (s *Service) UpdateStatus(ctx context.Context, userID, appointmentID uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment id=%s", status, appointmentID)
		return nil, ErrInvalidStatus
	}

	appt, err := s.getOwnedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s",
			appt.Status, status, appointmentID)
		return nil, ErrStatusTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: failed to update appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	appt.Status = status

	s.logger.Info("UpdateStatus: appointment id=%s status changed to %s", appointmentID, status)
	return appt, nil
}

// List получает записи барбершопа с фильтром по дню и пагинацией
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResult, error) {
	if req.BarbershopID == uuid.Nil {
		return nil, fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}

	if err := s.checkOwnership(ctx, req.UserID, req.BarbershopID); err != nil {
		return nil, err
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}

	filter := domain.AppointmentsFilter{
		BarbershopID: req.BarbershopID,
		Date:         req.Date,
		Page:         page,
		Limit:        domain.DefaultPageLimit,
	}

	appts, total, err := s.appointmentRepo.ListByBarbershop(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list appointments for barbershop id=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	return &models.ListResult{
		Appointments: appts,
		Total:        total,
		Page:         page,
		Limit:        domain.DefaultPageLimit,
	}, nil
}

func (s *Service) getOwnedAppointment(ctx context.Context, userID, appointmentID uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("failed to get appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if err := s.checkOwnership(ctx, userID, appt.BarbershopID); err != nil {
		return nil, err
	}

	return appt, nil
}

func (s *Service) checkOwnership(ctx context.Context, userID, barbershopID uuid.UUID) error {
	shop, err := s.catalogRepo.GetBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			return ErrBarbershopNotFound
		}
		s.logger.Error("failed to get barbershop id=%s: %v", barbershopID, err)
		return fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	if !shop.IsOwnedBy(userID) {
		s.logger.Warn("user=%s is not the owner of barbershop=%s", userID, barbershopID)
		return ErrAccessDenied
	}

	return nil
}
