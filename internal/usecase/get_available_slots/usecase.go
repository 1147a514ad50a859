package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/catalog"
	scheduleRepo "github.com/barberbook/BarberBook-AvailabilityService/internal/infra/storage/schedule"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Результат детерминирован: одинаковые входные данные дают одинаковый список,
// никакой зависимости от текущего времени здесь нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barbershop=%s, employee=%s, service=%s, date=%s",
		req.BarbershopID, req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (нужна длительность)
	service, err := uc.catalogRepo.GetService(ctx, req.BarbershopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем существование сотрудника
	if _, err := uc.catalogRepo.GetEmployee(ctx, req.BarbershopID, req.EmployeeID); err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 4. Получаем расписание барбершопа с перерывами
	schedule, err := uc.scheduleRepo.GetByBarbershop(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: schedule for barbershop id=%s not found", req.BarbershopID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Если день недели нерабочий - генератор не вызывается, сразу пустой список
	if !schedule.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: barbershop is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 6. Конвертируем рабочие часы и перерывы в минуты от полуночи
	openMinutes, err := schedule.OpenTime.Minutes()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid open time %q: %v", schedule.OpenTime, err)
		return nil, fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}
	closeMinutes, err := schedule.CloseTime.Minutes()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid close time %q: %v", schedule.CloseTime, err)
		return nil, fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	breakIntervals, err := breaksToIntervals(schedule.Breaks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid break interval: %v", err)
		return nil, fmt.Errorf("%w: invalid break interval: %v", ErrInternal, err)
	}

	// 7. Получаем неотмененные записи сотрудника на этот день
	appointments, err := uc.appointmentRepo.GetActiveByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	bookedIntervals := appointmentsToIntervals(appointments)

	// 8. Генерируем слоты
	slotMinutes := generateAvailableSlots(
		openMinutes,
		closeMinutes,
		breakIntervals,
		bookedIntervals,
		service.DurationMinutes,
		domain.SlotStepMinutes,
	)

	// 9. Форматируем минуты обратно в "HH:MM"
	slots := make([]types.TimeString, 0, len(slotMinutes))
	for _, minutes := range slotMinutes {
		slot, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to format slot %d: %v", minutes, err)
			return nil, fmt.Errorf("%w: failed to format slot: %v", ErrInternal, err)
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for barbershop=%s, employee=%s, service=%s, date=%s",
		len(slots), req.BarbershopID, req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BarbershopID:    req.BarbershopID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		AvailableSlots:  slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		BarbershopID:    req.BarbershopID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		AvailableSlots:  []types.TimeString{},
	}
}

// breaksToIntervals конвертирует перерывы расписания в минутные интервалы.
// Некорректно сохраненное время перерыва - ошибка данных, а не повод молча
// раздать слоты внутри перерыва.
func breaksToIntervals(breaks []domain.Break) ([]minuteInterval, error) {
	intervals := make([]minuteInterval, 0, len(breaks))
	for _, brk := range breaks {
		start, err := brk.StartTime.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := brk.EndTime.Minutes()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, minuteInterval{Start: start, End: end})
	}
	return intervals, nil
}

// appointmentsToIntervals конвертирует записи в занятые минутные интервалы.
// Конец интервала = начало + длительность услуги этой записи. Записи с
// некорректным временем начала пропускаются.
func appointmentsToIntervals(appointments []*domain.Appointment) []minuteInterval {
	intervals := make([]minuteInterval, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.OccupiesTime() {
			continue
		}
		start, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		intervals = append(intervals, minuteInterval{Start: start, End: start + appt.DurationMinutes})
	}
	return intervals
}
