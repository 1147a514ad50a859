package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
	scheduleRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка доступности слота и вставка выполняются в сериализуемой транзакции,
// чтобы два одновременных запроса не заняли один и тот же слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, barbershop=%s, employee=%s, service=%s, date=%s, time=%s",
		req.UserID, req.BarbershopID, req.EmployeeID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем барбершоп и проверяем владельца
	shop, err := uc.catalogRepo.GetBarbershop(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			uc.logger.Warn("CreateAppointment: barbershop id=%s not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barbershop id=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	if !shop.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CreateAppointment: user=%s is not the owner of barbershop=%s", req.UserID, req.BarbershopID)
		return nil, ErrAccessDenied
	}

	// 4. Получаем сотрудника
	if _, err := uc.catalogRepo.GetEmployee(ctx, req.BarbershopID, req.EmployeeID); err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateAppointment: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.BarbershopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Получаем расписание и проверяем рабочий день
	schedule, err := uc.scheduleRepo.GetByBarbershop(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateAppointment: schedule for barbershop id=%s not found", req.BarbershopID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: barbershop is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrBarbershopClosed
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	var result *domain.Appointment

	// 7. Проверка доступности слота + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointments, err := uc.appointmentRepo.GetActiveByEmployeeAndDate(txCtx, req.EmployeeID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if err := validateSlot(schedule, startMinutes, service.DurationMinutes, appointments); err != nil {
			uc.logger.Warn("CreateAppointment: slot %s is not available: %v", req.StartTime, err)
			return err
		}

		appt := &domain.Appointment{
			BarbershopID:    req.BarbershopID,
			EmployeeID:      req.EmployeeID,
			ServiceID:       req.ServiceID,
			ClientName:      req.ClientName,
			ClientContact:   req.ClientContact,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{Appointment: result}, nil
}
