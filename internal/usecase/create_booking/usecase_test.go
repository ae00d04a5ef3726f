package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-spa/SchedulingService/internal/domain"
	storageconfig "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/pkg/ptr"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) GetByTherapistAndDate(_ context.Context, _ int64, _ types.CalendarDate) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
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
	therapist *catalogservice.Therapist
	service   *catalogservice.Service
}

func (f *fakeCatalog) GetTherapist(_ context.Context, _ int64) (*catalogservice.Therapist, error) {
	if f.therapist == nil {
		return nil, catalogservice.ErrTherapistNotFound
	}
	return f.therapist, nil
}

func (f *fakeCatalog) GetService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	if f.service == nil {
		return nil, catalogservice.ErrServiceNotFound
	}
	return f.service, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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
	bookings  *fakeBookingRepo
	hours     *fakeHoursRepo
	config    *fakeConfigRepo
	catalog   *fakeCatalog
	txManager *fakeTxManager
	uc        *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{nextID: 100},
		hours:    &fakeHoursRepo{windows: fullWeek("09:00", "18:00")},
		config:   &fakeConfigRepo{},
		catalog: &fakeCatalog{
			therapist: &catalogservice.Therapist{ID: 7, SalonID: 3, FullName: "Anna Keller", IsActive: true},
			service: &catalogservice.Service{
				ID: 12, SalonID: 3, Name: "Deep tissue massage",
				Price: ptr.Ptr(120.0), DurationMinutes: 60, IsActive: true,
			},
		},
		txManager: &fakeTxManager{},
	}
	f.uc = New(f.bookings, f.hours, f.config, f.catalog, f.txManager, fixedTime{t: now}, noopLogger{})
	return f
}

func validRequest() Request {
	return Request{
		UserID:      1,
		TherapistID: 7,
		ServiceID:   12,
		Date:        types.CalendarDate{Year: 2026, Month: 3, Day: 3},
		StartTime:   "11:00",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, f.txManager.calls)

	// Денормализованные данные каталога сохранены в бронировании
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, "Deep tissue massage", f.bookings.created.ServiceName)
	assert.Equal(t, 120.0, f.bookings.created.ServicePrice)
	assert.Equal(t, "Anna Keller", f.bookings.created.TherapistName)
	assert.Equal(t, int64(3), f.bookings.created.SalonID)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.bookings.existing = []*domain.Booking{
		{ID: 1, TherapistID: 7, StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	req := validRequest()
	req.StartTime = "11:00" // пересекается с 10:30-11:30

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.bookings.existing = []*domain.Booking{
		{ID: 1, TherapistID: 7, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	req := validRequest()
	req.StartTime = "11:00" // старт ровно в конец занятого интервала

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
}

func TestExecute_OffGridStartRejected(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	req := validRequest()
	req.StartTime = "11:07" // не кратно шагу сетки

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	req := validRequest()
	req.StartTime = "17:30" // услуга 60 минут не помещается до 18:00

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.hours.windows[time.Tuesday] = domain.OperatingWindow{Weekday: time.Tuesday, IsOpen: false}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SameDayLeadTime(t *testing.T) {
	// Сегодня 14:05, lead time 30 минут: старт 14:15 уже недоступен
	f := newFixture(time.Date(2026, 3, 3, 14, 5, 0, 0, time.Local))

	req := validRequest()
	req.StartTime = "14:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)

	req.StartTime = "14:45"
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:45"), resp.StartTime)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_AdvanceBookingLimit(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.config.cfg = &domain.SlotsConfig{
		SalonID:            3,
		StepMinutes:        15,
		AdminStepMinutes:   30,
		LeadTimeMinutes:    30,
		AdvanceBookingDays: 7,
	}

	req := validRequest()
	req.Date = types.CalendarDate{Year: 2026, Month: 3, Day: 20}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_TherapistNotFound(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.catalog.therapist = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	f.catalog.service = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))

	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'a'
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero therapist", func(r *Request) { r.TherapistID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = types.CalendarDate{} }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(string(longNotes)) }},
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
