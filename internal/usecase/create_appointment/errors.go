package create_appointment

import "errors"

var (
	// ErrBarbershopNotFound возвращается, когда барбершоп не найден
	ErrBarbershopNotFound = errors.New("barbershop not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrScheduleNotFound возвращается, когда у барбершопа нет расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет барбершопом
	ErrAccessDenied = errors.New("access denied")

	// ErrBarbershopClosed возвращается, когда барбершоп не работает в выбранную дату
	ErrBarbershopClosed = errors.New("barbershop is closed on this date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или не существует
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
