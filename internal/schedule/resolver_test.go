package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

func openWindow(weekday time.Weekday, opens, closes string) domain.OperatingWindow {
	return domain.OperatingWindow{
		Weekday:  weekday,
		OpensAt:  types.TimeString(opens),
		ClosesAt: types.TimeString(closes),
		IsOpen:   true,
	}
}

func occupied(start, end string) OccupiedInterval {
	return OccupiedInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

// localNow возвращает момент "сейчас" в локальном времени салона
func localNow(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestResolve_FullDayNoBookings(t *testing.T) {
	// Окно 09:00-18:00, шаг 15, услуга 60 минут, дата - завтра
	now := localNow(2026, time.March, 2, 12, 0) // понедельник
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "18:00"),
		ServiceDurationMinutes: 60,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)

	// Полная сетка: 09:00..17:45 с шагом 15 минут
	require.Len(t, result, 36)
	assert.Equal(t, types.TimeString("09:00"), result[0].Start)
	assert.Equal(t, types.TimeString("17:45"), result[len(result)-1].Start)

	// Доступны только слоты, на которые услуга помещается до закрытия:
	// start + 60 <= 18:00, то есть 09:00..17:00
	available := result.AvailableStarts()
	require.Len(t, available, 33)
	assert.Equal(t, types.TimeString("09:00"), available[0])
	assert.Equal(t, types.TimeString("17:00"), available[len(available)-1])

	// Хвост сетки присутствует, но недоступен
	assert.False(t, result.IsAvailable("17:15"))
	assert.False(t, result.IsAvailable("17:30"))
	assert.False(t, result.IsAvailable("17:45"))
}

func TestResolve_OneBookingExcludesOverlaps(t *testing.T) {
	// Бронирование 10:00-11:00: пересекающиеся кандидаты недоступны,
	// граничащие - доступны
	now := localNow(2026, time.March, 2, 12, 0)
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "18:00"),
		Occupied:               []OccupiedInterval{occupied("10:00", "11:00")},
		ServiceDurationMinutes: 60,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)

	// 09:00 заканчивается ровно в 10:00 - граница, доступен
	assert.True(t, result.IsAvailable("09:00"))

	// 09:15..09:45 заканчиваются внутри занятого интервала
	assert.False(t, result.IsAvailable("09:15"))
	assert.False(t, result.IsAvailable("09:30"))
	assert.False(t, result.IsAvailable("09:45"))

	// Кандидаты внутри занятого интервала
	assert.False(t, result.IsAvailable("10:00"))
	assert.False(t, result.IsAvailable("10:45"))

	// 11:00 начинается ровно в конце занятого интервала - доступен
	assert.True(t, result.IsAvailable("11:00"))
}

func TestResolve_Determinism(t *testing.T) {
	now := localNow(2026, time.March, 3, 10, 7)
	in := ResolveInput{
		Window: openWindow(time.Tuesday, "09:00", "18:00"),
		Occupied: []OccupiedInterval{
			occupied("10:00", "11:00"),
			occupied("13:30", "14:15"),
		},
		ServiceDurationMinutes: 45,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	first, err := Resolve(in)
	require.NoError(t, err)

	second, err := Resolve(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_ClosedDay(t *testing.T) {
	now := localNow(2026, time.March, 2, 12, 0)
	in := ResolveInput{
		Window:                 domain.Closed(time.Sunday),
		Occupied:               []OccupiedInterval{occupied("10:00", "11:00")},
		ServiceDurationMinutes: 60,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 8), // воскресенье
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestResolve_PastDate(t *testing.T) {
	// Вчерашняя дата - пустой результат, не ошибка
	now := localNow(2026, time.March, 3, 9, 0)
	in := ResolveInput{
		Window:                 openWindow(time.Monday, "09:00", "18:00"),
		ServiceDurationMinutes: 60,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 2),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestResolve_SortedWithoutDuplicates(t *testing.T) {
	now := localNow(2026, time.March, 2, 12, 0)
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "10:00", "14:00"),
		Occupied:               []OccupiedInterval{occupied("11:00", "12:00")},
		ServiceDurationMinutes: 30,
		StepMinutes:            30,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	seen := make(map[types.TimeString]bool, len(result))
	prev := -1
	for _, v := range result {
		assert.False(t, seen[v.Start], "duplicate start %s", v.Start)
		seen[v.Start] = true

		minutes, err := v.Start.MinutesSinceMidnight()
		require.NoError(t, err)
		assert.Greater(t, minutes, prev, "grid must be ascending")
		prev = minutes
	}
}

func TestResolve_OverlapBoundaries(t *testing.T) {
	now := localNow(2026, time.March, 2, 12, 0)
	date := types.NewCalendarDate(2026, time.March, 3)
	window := openWindow(time.Tuesday, "09:00", "18:00")

	tests := []struct {
		name      string
		occupied  OccupiedInterval
		start     types.TimeString
		duration  int
		step      int
		available bool
	}{
		{
			name:      "start exactly at occupied end",
			occupied:  occupied("10:00", "11:00"),
			start:     "11:00",
			duration:  30,
			step:      15,
			available: true,
		},
		{
			name:      "start one minute before occupied end",
			occupied:  occupied("10:00", "10:59"),
			start:     "10:58",
			duration:  30,
			step:      2,
			available: false,
		},
		{
			name:      "candidate fully contains occupied interval",
			occupied:  occupied("10:15", "10:30"),
			start:     "10:00",
			duration:  60,
			step:      15,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Resolve(ResolveInput{
				Window:                 window,
				Occupied:               []OccupiedInterval{tt.occupied},
				ServiceDurationMinutes: tt.duration,
				StepMinutes:            tt.step,
				LeadTimeMinutes:        30,
				Date:                   date,
				Now:                    now,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.IsAvailable(tt.start))
		})
	}
}

func TestResolve_DurationFit(t *testing.T) {
	now := localNow(2026, time.March, 2, 12, 0)
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "18:00"),
		ServiceDurationMinutes: 60,
		StepMinutes:            30,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)

	// 17:00 + 60 = 18:00, ровно до закрытия - помещается
	assert.True(t, result.IsAvailable("17:00"))
	// 17:30 + 60 = 18:30, за закрытие - не помещается
	assert.False(t, result.IsAvailable("17:30"))
}

func TestResolve_SameDayLeadTime(t *testing.T) {
	// now = 14:05, lead time 30: отсечка 14:35.
	// Слот 14:30 <= 14:35 - недоступен, 14:40 > 14:35 - доступен.
	now := localNow(2026, time.March, 3, 14, 5)
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "18:00"),
		ServiceDurationMinutes: 30,
		StepMinutes:            5,
		LeadTimeMinutes:        30,
		Date:                   types.DateOf(now),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)

	assert.False(t, result.IsAvailable("14:30"))
	assert.False(t, result.IsAvailable("14:35"))
	assert.True(t, result.IsAvailable("14:40"))

	// Утренние слоты того же дня тоже отсечены
	assert.False(t, result.IsAvailable("09:00"))
}

func TestResolve_LeadTimeNotAppliedToFutureDates(t *testing.T) {
	now := localNow(2026, time.March, 3, 14, 5)
	in := ResolveInput{
		Window:                 openWindow(time.Wednesday, "09:00", "18:00"),
		ServiceDurationMinutes: 30,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 4),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)
	assert.True(t, result.IsAvailable("09:00"))
}

func TestResolve_EndOfDayNothingLeft(t *testing.T) {
	// now = 19:55, закрытие 20:00, lead time 30:
	// отсечка 20:25 позже любого кандидата - весь день недоступен
	now := localNow(2026, time.March, 3, 19, 55)
	in := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "20:00"),
		ServiceDurationMinutes: 30,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.DateOf(now),
		Now:                    now,
	}

	result, err := Resolve(in)
	require.NoError(t, err)

	require.NotEmpty(t, result)
	assert.Empty(t, result.AvailableStarts())
}

func TestResolve_InputValidation(t *testing.T) {
	now := localNow(2026, time.March, 2, 12, 0)
	base := ResolveInput{
		Window:                 openWindow(time.Tuesday, "09:00", "18:00"),
		ServiceDurationMinutes: 60,
		StepMinutes:            15,
		LeadTimeMinutes:        30,
		Date:                   types.NewCalendarDate(2026, time.March, 3),
		Now:                    now,
	}

	t.Run("zero duration", func(t *testing.T) {
		in := base
		in.ServiceDurationMinutes = 0
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("negative duration", func(t *testing.T) {
		in := base
		in.ServiceDurationMinutes = -15
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("zero step", func(t *testing.T) {
		in := base
		in.StepMinutes = 0
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("negative lead time", func(t *testing.T) {
		in := base
		in.LeadTimeMinutes = -1
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrInvalidLeadTime)
	})
}
