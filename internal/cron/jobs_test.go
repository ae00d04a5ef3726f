package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velora-spa/SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	today   types.CalendarDate
	nowTime types.TimeString
	updated int64
	err     error
}

func (f *fakeBookingRepo) CompletePastBookings(_ context.Context, today types.CalendarDate, nowTime types.TimeString) (int64, error) {
	f.today = today
	f.nowTime = nowTime
	return f.updated, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCompletePastBookings(t *testing.T) {
	repo := &fakeBookingRepo{updated: 3}
	now := time.Date(2026, 3, 3, 14, 5, 0, 0, time.Local)
	runner := NewRunner(repo, fixedTime{t: now}, noopLogger{})

	runner.completePastBookings()

	assert.Equal(t, types.CalendarDate{Year: 2026, Month: 3, Day: 3}, repo.today)
	assert.Equal(t, types.TimeString("14:05"), repo.nowTime)
}
