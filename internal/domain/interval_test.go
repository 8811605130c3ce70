package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(hour, min int) time.Time {
	return time.Date(2026, 3, 16, hour, min, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "полное пересечение",
			a:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			b:        Interval{Start: utc(10, 15), End: utc(10, 45)},
			expected: true,
		},
		{
			name:     "частичное пересечение",
			a:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			b:        Interval{Start: utc(10, 30), End: utc(11, 30)},
			expected: true,
		},
		{
			name:     "впритык: конец A равен началу B",
			a:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			b:        Interval{Start: utc(11, 0), End: utc(12, 0)},
			expected: false,
		},
		{
			name:     "впритык: конец B равен началу A",
			a:        Interval{Start: utc(11, 0), End: utc(12, 0)},
			b:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			expected: false,
		},
		{
			name:     "без пересечения",
			a:        Interval{Start: utc(9, 0), End: utc(10, 0)},
			b:        Interval{Start: utc(12, 0), End: utc(13, 0)},
			expected: false,
		},
		{
			name:     "одинаковые интервалы",
			a:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			b:        Interval{Start: utc(10, 0), End: utc(11, 0)},
			expected: true,
		},
		{
			name:     "минутное пересечение на границе",
			a:        Interval{Start: utc(10, 0), End: utc(11, 1)},
			b:        Interval{Start: utc(11, 0), End: utc(12, 0)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	i := Interval{Start: utc(10, 0), End: utc(11, 0)}

	assert.True(t, i.Contains(utc(10, 0)), "начало входит в полуоткрытый интервал")
	assert.True(t, i.Contains(utc(10, 30)))
	assert.False(t, i.Contains(utc(11, 0)), "конец не входит в полуоткрытый интервал")
	assert.False(t, i.Contains(utc(9, 59)))
}

func TestLocalDayOf(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name            string
		instant         time.Time
		expectedDay     int
		expectedWeekday time.Weekday
	}{
		{
			// 2026-03-16 02:00 UTC = 2026-03-15 23:00 в Сан-Паулу (UTC-3)
			name:            "UTC-момент после местной полуночи относится к предыдущей местной дате",
			instant:         time.Date(2026, 3, 16, 2, 0, 0, 0, time.UTC),
			expectedDay:     15,
			expectedWeekday: time.Sunday,
		},
		{
			name:            "дневной момент остаётся в той же дате",
			instant:         time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC),
			expectedDay:     16,
			expectedWeekday: time.Monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, weekday := LocalDayOf(tt.instant, saoPaulo)

			assert.Equal(t, tt.expectedDay, day.Day())
			assert.Equal(t, tt.expectedWeekday, weekday)
			assert.Equal(t, 0, day.Hour(), "LocalDayOf возвращает местную полночь")
			assert.Equal(t, saoPaulo, day.Location())
		})
	}
}

func TestAppointment_IsBusy(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appt := &Appointment{Status: tt.status}
			assert.Equal(t, tt.expected, appt.IsBusy())
		})
	}
}

func TestBlockedSlot_AppliesTo(t *testing.T) {
	profID := int64(42)

	personal := &BlockedSlot{ProfessionalID: &profID}
	assert.True(t, personal.AppliesTo(42))
	assert.False(t, personal.AppliesTo(7))

	businessWide := &BlockedSlot{ProfessionalID: nil}
	assert.True(t, businessWide.AppliesTo(42), "общая блокировка действует на всех мастеров")
	assert.True(t, businessWide.AppliesTo(7))
}
