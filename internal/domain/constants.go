package domain

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг перебора кандидатов.
	// Не зависит от длительности услуги: 45-минутная услуга всё равно
	// стартует только на 30-минутных границах от времени открытия.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinClientNameLength    = 2
	MinClientContactLength = 10
	MinServiceDuration     = 5
	MaxServiceDuration     = 480 // 8 hours
)

// Pagination constants
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidWeekdays допустимые значения дней недели (0 = воскресенье)
const (
	MinWeekday = 0
	MaxWeekday = 6
)
