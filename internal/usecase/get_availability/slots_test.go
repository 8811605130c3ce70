package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/toyesterday/agenda/internal/domain"
)

var (
	// Рабочий день 09:00-18:00 UTC, "сейчас" задолго до его начала
	workdayStart = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	workdayEnd   = time.Date(2026, 3, 16, 18, 0, 0, 0, time.UTC)
	longAgo      = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func slotAt(hour, min int) time.Time {
	return time.Date(2026, 3, 16, hour, min, 0, 0, time.UTC)
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	workday := domain.Interval{Start: workdayStart, End: workdayEnd}

	slots := generateSlots(workday, nil, 30, longAgo)

	// 09:00..17:30 с шагом 15 минут: 35 кандидатов
	assert.Len(t, slots, 35)
	assert.Equal(t, slotAt(9, 0), slots[0])
	assert.Equal(t, slotAt(17, 30), slots[len(slots)-1])
}

func TestGenerateSlots_Quantization(t *testing.T) {
	// Окно 09:00-10:00, услуга 45 минут: успевают только 09:00 и 09:15
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(10, 0)}

	slots := generateSlots(workday, nil, 45, longAgo)

	assert.Equal(t, []time.Time{slotAt(9, 0), slotAt(9, 15)}, slots)
}

func TestGenerateSlots_BusyOverlap(t *testing.T) {
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(12, 0)}
	busy := []domain.Interval{
		{Start: slotAt(10, 0), End: slotAt(11, 0)},
	}

	slots := generateSlots(workday, busy, 30, longAgo)

	// Услуга 30 минут не помещается с 09:45 (зашла бы в 10:00-11:00),
	// но ровно в 11:00 запись "впритык" разрешена
	assert.Contains(t, slots, slotAt(9, 30))
	assert.NotContains(t, slots, slotAt(9, 45))
	assert.NotContains(t, slots, slotAt(10, 0))
	assert.NotContains(t, slots, slotAt(10, 45))
	assert.Contains(t, slots, slotAt(11, 0))
}

func TestGenerateSlots_BackToBackAllowed(t *testing.T) {
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(12, 0)}
	busy := []domain.Interval{
		{Start: slotAt(9, 0), End: slotAt(10, 30)},
	}

	slots := generateSlots(workday, busy, 60, longAgo)

	// Первый доступный кандидат начинается ровно в конце занятого интервала
	assert.Equal(t, slotAt(10, 30), slots[0])
}

func TestGenerateSlots_PastCandidatesExcluded(t *testing.T) {
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(12, 0)}
	now := slotAt(10, 10)

	slots := generateSlots(workday, nil, 30, now)

	// Кандидаты до 10:10 уже в прошлом; 10:15 - первый допустимый
	assert.Equal(t, slotAt(10, 15), slots[0])
	for _, s := range slots {
		assert.False(t, s.Before(now))
	}
}

func TestGenerateSlots_ServiceMustEndWithinWorkday(t *testing.T) {
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(11, 0)}

	slots := generateSlots(workday, nil, 90, longAgo)

	// 09:30+90m = 11:00 - успевает ровно к закрытию; 09:45 уже нет
	assert.Equal(t, []time.Time{slotAt(9, 0), slotAt(9, 15), slotAt(9, 30)}, slots)
}

func TestGenerateSlots_FullyBlockedDay(t *testing.T) {
	workday := domain.Interval{Start: slotAt(9, 0), End: slotAt(12, 0)}
	busy := []domain.Interval{
		{Start: slotAt(8, 0), End: slotAt(13, 0)},
	}

	slots := generateSlots(workday, busy, 15, longAgo)

	assert.Empty(t, slots)
}

func TestGenerateSlots_NoOverlapInvariant(t *testing.T) {
	workday := domain.Interval{Start: workdayStart, End: workdayEnd}
	busy := []domain.Interval{
		{Start: slotAt(9, 30), End: slotAt(10, 0)},
		{Start: slotAt(11, 0), End: slotAt(12, 45)},
		{Start: slotAt(16, 20), End: slotAt(16, 40)},
	}

	for _, duration := range []int{15, 30, 45, 60, 120} {
		slots := generateSlots(workday, busy, duration, longAgo)
		for _, s := range slots {
			candidate := domain.NewInterval(s, time.Duration(duration)*time.Minute)
			for _, b := range busy {
				assert.False(t, candidate.Overlaps(b),
					"slot %s (dur=%d) overlaps busy %s-%s", s, duration, b.Start, b.End)
			}
			assert.False(t, candidate.End.After(workday.End))
			assert.False(t, candidate.Start.Before(workday.Start))
		}
	}
}

func TestCollectBusyIntervals(t *testing.T) {
	profID := int64(1)
	appointments := []*domain.Appointment{
		{StartTime: slotAt(10, 0), EndTime: slotAt(11, 0), Status: domain.StatusConfirmed},
	}
	blocked := []*domain.BlockedSlot{
		{ProfessionalID: &profID, StartTime: slotAt(13, 0), EndTime: slotAt(14, 0)},
		{ProfessionalID: nil, StartTime: slotAt(15, 0), EndTime: slotAt(16, 0)},
	}

	busy := collectBusyIntervals(appointments, blocked)

	assert.Len(t, busy, 3)
	assert.Equal(t, domain.Interval{Start: slotAt(10, 0), End: slotAt(11, 0)}, busy[0])
	assert.Equal(t, domain.Interval{Start: slotAt(15, 0), End: slotAt(16, 0)}, busy[2])
}
