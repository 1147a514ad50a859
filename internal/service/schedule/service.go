package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
	scheduleRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/schedule"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями барбершопов
type Service struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get получает расписание барбершопа с проверкой владельца
func (s *Service) Get(ctx context.Context, userID, barbershopID uuid.UUID) (*domain.Schedule, error) {
	if err := s.checkOwnership(ctx, userID, barbershopID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Get: failed to get schedule for barbershop id=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	return schedule, nil
}

// Upsert создает или обновляет расписание барбершопа.
// Расписание и перерывы заменяются атомарно в одной транзакции.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRequest) (*domain.Schedule, error) {
	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkOwnership(ctx, req.UserID, req.BarbershopID); err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{
		BarbershopID: req.BarbershopID,
		DaysOfWeek:   req.DaysOfWeek,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		Breaks:       make([]domain.Break, 0, len(req.Breaks)),
	}
	for _, brk := range req.Breaks {
		schedule.Breaks = append(schedule.Breaks, domain.Break{
			StartTime: brk.StartTime,
			EndTime:   brk.EndTime,
		})
	}

	var result *domain.Schedule
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		upserted, err := s.scheduleRepo.Upsert(txCtx, schedule)
		if err != nil {
			s.logger.Error("Upsert: failed to upsert schedule for barbershop id=%s: %v", req.BarbershopID, err)
			return fmt.Errorf("%w: failed to upsert schedule: %v", ErrInternal, err)
		}
		result = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Upsert: schedule id=%s saved for barbershop id=%s", result.ID, req.BarbershopID)
	return result, nil
}

// validateUpsertRequest проверяет дни недели, рабочее окно и перерывы.
// Перерывы должны целиком лежать внутри [open, close] и иметь start < end.
func validateUpsertRequest(req *models.UpsertRequest) error {
	if req.BarbershopID == uuid.Nil {
		return fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}

	if len(req.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: daysOfWeek is required", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.DaysOfWeek))
	for _, day := range req.DaysOfWeek {
		if day < domain.MinWeekday || day > domain.MaxWeekday {
			return fmt.Errorf("%w: day of week must be in [0, 6], got %d", ErrInvalidInput, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: duplicate day of week %d", ErrInvalidInput, day)
		}
		seen[day] = true
	}

	openMinutes, err := req.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	closeMinutes, err := req.CloseTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}

	if openMinutes >= closeMinutes {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidTimeRange)
	}

	for _, brk := range req.Breaks {
		breakStart, err := brk.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid break start time: %v", ErrInvalidInput, err)
		}
		breakEnd, err := brk.EndTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid break end time: %v", ErrInvalidInput, err)
		}
		if breakStart >= breakEnd {
			return fmt.Errorf("%w: break start must be before break end", ErrInvalidTimeRange)
		}
		if breakStart < openMinutes || breakEnd > closeMinutes {
			return fmt.Errorf("%w: break must be within working hours", ErrInvalidTimeRange)
		}
	}

	return nil
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
