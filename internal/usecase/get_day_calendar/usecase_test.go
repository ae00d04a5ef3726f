package get_day_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-spa/SchedulingService/internal/domain"
	storageconfig "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.SalonBookingsFilter
}

func (f *fakeBookingRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeHoursRepo struct {
	windows []domain.OperatingWindow
}

func (f *fakeHoursRepo) GetWeek(_ context.Context, _ int64) ([]domain.OperatingWindow, error) {
	return f.windows, nil
}

type fakeConfigRepo struct {
	cfg *domain.SlotsConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64) (*domain.SlotsConfig, error) {
	if f.cfg == nil {
		return nil, storageconfig.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeCatalog struct {
	salon     *catalogservice.Salon
	therapist *catalogservice.Therapist
}

func (f *fakeCatalog) GetSalon(_ context.Context, _ int64) (*catalogservice.Salon, error) {
	if f.salon == nil {
		return nil, catalogservice.ErrSalonNotFound
	}
	return f.salon, nil
}

func (f *fakeCatalog) GetTherapist(_ context.Context, _ int64) (*catalogservice.Therapist, error) {
	if f.therapist == nil {
		return nil, catalogservice.ErrTherapistNotFound
	}
	return f.therapist, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func fullWeek(opens, closes types.TimeString) []domain.OperatingWindow {
	windows := make([]domain.OperatingWindow, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		windows = append(windows, domain.OperatingWindow{
			Weekday: wd, OpensAt: opens, ClosesAt: closes, IsOpen: true,
		})
	}
	return windows
}

type fixture struct {
	bookings *fakeBookingRepo
	hours    *fakeHoursRepo
	config   *fakeConfigRepo
	catalog  *fakeCatalog
	uc       *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		hours:    &fakeHoursRepo{windows: fullWeek("09:00", "18:00")},
		config:   &fakeConfigRepo{},
		catalog: &fakeCatalog{
			salon:     &catalogservice.Salon{ID: 3, Name: "Velora Downtown", ManagerIDs: []int64{42}},
			therapist: &catalogservice.Therapist{ID: 7, SalonID: 3, FullName: "Anna Keller", IsActive: true},
		},
	}
	f.uc = New(f.bookings, f.hours, f.config, f.catalog, fixedTime{t: now}, noopLogger{})
	return f
}

func validRequest() Request {
	return Request{
		UserID:      42,
		SalonID:     3,
		TherapistID: 7,
		Date:        types.CalendarDate{Year: 2026, Month: 3, Day: 3},
	}
}

func TestExecute_AdminGridWithBookings(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.bookings.bookings = []*domain.Booking{
		{
			ID: 1, UserID: 5, TherapistID: 7, ServiceID: 12,
			ServiceName: "Deep tissue massage",
			StartTime:   "10:00", DurationMinutes: 60,
			Status: domain.StatusConfirmed,
		},
		{
			ID: 2, UserID: 6, TherapistID: 7, ServiceID: 13,
			ServiceName: "Hot stone massage",
			StartTime:   "14:00", DurationMinutes: 30,
			Status: domain.StatusCancelledByClient,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Equal(t, types.TimeString("09:00"), resp.OpensAt)
	assert.Equal(t, types.TimeString("18:00"), resp.ClosesAt)

	// Административный шаг по умолчанию 30 минут: 09:00..17:30 = 18 слотов
	assert.Equal(t, domain.DefaultAdminStepMinutes, resp.StepMinutes)
	assert.Len(t, resp.Slots, 18)

	byStart := make(map[types.TimeString]CalendarSlot, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[s.StartTime] = s
	}

	// Подтвержденное бронирование 10:00-11:00 занимает сетку
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.True(t, byStart["11:00"].Available)
	// Отмененное бронирование 14:00 сетку не занимает
	assert.True(t, byStart["14:00"].Available)

	// Но в списке бронирований отмененное присутствует
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, domain.StatusCancelledByClient, resp.Bookings[1].Status)
	assert.Equal(t, types.TimeString("11:00"), resp.Bookings[0].EndTime)

	// Выборка шла с IncludeInactive и фильтром по мастеру и дате
	assert.True(t, f.bookings.lastFilter.IncludeInactive)
	require.NotNil(t, f.bookings.lastFilter.TherapistID)
	assert.Equal(t, int64(7), *f.bookings.lastFilter.TherapistID)
	require.NotNil(t, f.bookings.lastFilter.StartDate)
	assert.Equal(t, validRequest().Date, *f.bookings.lastFilter.StartDate)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.hours.windows[time.Tuesday] = domain.OperatingWindow{Weekday: time.Tuesday, IsOpen: false}
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, UserID: 5, TherapistID: 7, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledBySalon},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Slots)
	// Бронирования показываются и для закрытого дня
	assert.Len(t, resp.Bookings, 1)
}

func TestExecute_NoLeadTimeForManager(t *testing.T) {
	// Сегодня 14:05: клиентская сетка отсекла бы ближайшие слоты,
	// менеджер видит их доступными
	f := newFixture(time.Date(2026, 3, 3, 14, 5, 0, 0, time.Local))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	byStart := make(map[types.TimeString]CalendarSlot, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[s.StartTime] = s
	}
	assert.True(t, byStart["14:30"].Available)
}

func TestExecute_PermissionDenied(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	req := validRequest()
	req.UserID = 99

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_TherapistFromAnotherSalon(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.catalog.therapist.SalonID = 8

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestExecute_SalonNotFound(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.catalog.salon = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero salon", func(r *Request) { r.SalonID = 0 }},
		{"zero therapist", func(r *Request) { r.TherapistID = 0 }},
		{"zero date", func(r *Request) { r.Date = types.CalendarDate{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
