package domain

// Default configuration values
const (
	// DefaultTimezone часовой пояс бизнеса по умолчанию
	DefaultTimezone = "America/Sao_Paulo"
)

// Slot generation constants
const (
	// SlotStepMinutes шаг квантования кандидатов слотов
	SlotStepMinutes = 15
)

// Loyalty constants
const (
	// LoyaltyRewardThreshold порог накопления: при достижении счётчик
	// обнуляется и выдаётся награда. Допустимые значения счётчика: [0, 10).
	LoyaltyRewardThreshold = 10
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 часов
	MaxReasonLength    = 500
	MinWeekday         = 0 // воскресенье
	MaxWeekday         = 6 // суббота
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
