package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, NewCalendarDate(2026, time.March, 3), d)
	assert.Equal(t, "2026-03-03", d.String())

	_, err = ParseCalendarDate("03/03/2026")
	assert.Error(t, err)

	_, err = ParseCalendarDate("2026-13-40")
	assert.Error(t, err)
}

func TestCalendarDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Tuesday, NewCalendarDate(2026, time.March, 3).Weekday())
	assert.Equal(t, time.Sunday, NewCalendarDate(2026, time.March, 8).Weekday())
}

func TestCalendarDate_Ordering(t *testing.T) {
	earlier := NewCalendarDate(2026, time.March, 3)
	later := NewCalendarDate(2026, time.March, 4)
	nextMonth := NewCalendarDate(2026, time.April, 1)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, later.Before(nextMonth))
	assert.True(t, earlier.Equal(NewCalendarDate(2026, time.March, 3)))
	assert.False(t, earlier.Equal(later))
}

func TestCalendarDate_AddDays(t *testing.T) {
	d := NewCalendarDate(2026, time.February, 27)

	assert.Equal(t, NewCalendarDate(2026, time.February, 28), d.AddDays(1))
	// 2026 - не високосный год
	assert.Equal(t, NewCalendarDate(2026, time.March, 1), d.AddDays(2))
	assert.Equal(t, NewCalendarDate(2026, time.February, 26), d.AddDays(-1))
}

func TestDateOf_UsesLocalFields(t *testing.T) {
	// Дата берётся из полей момента напрямую, без конвертации таймзон:
	// поздний вечер в минус-часовом поясе остаётся той же календарной датой
	loc := time.FixedZone("UTC-5", -5*60*60)
	evening := time.Date(2026, time.March, 3, 23, 30, 0, 0, loc)

	assert.Equal(t, NewCalendarDate(2026, time.March, 3), DateOf(evening))
}
