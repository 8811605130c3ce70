package get_availability

import (
	"time"

	"github.com/toyesterday/agenda/internal/domain"
)

// generateSlots генерирует доступные моменты начала записи.
// Чистая детерминированная функция: одинаковые входы дают одинаковый
// результат (с точностью до отсечки now).
//
// Кандидаты идут от начала рабочего окна с фиксированным шагом 15 минут.
// Кандидат отбрасывается, если:
//   - он уже в прошлом (candidateStart < now);
//   - интервал услуги [start, start+duration) пересекает занятый интервал;
//   - услуга не успевает завершиться до конца рабочего окна
//     (candidateEnd > workday.End).
//
// Пересечение проверяется строго: занятый интервал, заканчивающийся ровно
// в момент начала кандидата, не мешает - записи "впритык" разрешены.
func generateSlots(workday domain.Interval, busy []domain.Interval, durationMinutes int, now time.Time) []time.Time {
	duration := time.Duration(durationMinutes) * time.Minute
	step := domain.SlotStepMinutes * time.Minute

	available := make([]time.Time, 0)

	for candidateStart := workday.Start; candidateStart.Before(workday.End); candidateStart = candidateStart.Add(step) {
		if candidateStart.Before(now) {
			continue
		}

		candidate := domain.NewInterval(candidateStart, duration)
		if candidate.End.After(workday.End) {
			// Дальше кандидаты только позже - можно не продолжать
			break
		}

		if overlapsAny(candidate, busy) {
			continue
		}

		available = append(available, candidateStart)
	}

	return available
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним занятым
// интервалом. Занятые интервалы не объединяются: каждый проверяется
// независимо.
func overlapsAny(candidate domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// collectBusyIntervals собирает занятые UTC-интервалы дня:
// подтверждённые и завершённые записи плюс применимые блокировки
func collectBusyIntervals(appointments []*domain.Appointment, blocked []*domain.BlockedSlot) []domain.Interval {
	busy := make([]domain.Interval, 0, len(appointments)+len(blocked))

	for _, appt := range appointments {
		busy = append(busy, appt.Interval())
	}
	for _, slot := range blocked {
		busy = append(busy, slot.Interval())
	}

	return busy
}
