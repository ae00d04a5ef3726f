package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-spa/SchedulingService/internal/domain"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/internal/service/schedule/models"
	"github.com/velora-spa/SchedulingService/pkg/ptr"
)

type fakeHoursRepo struct {
	windows  []domain.OperatingWindow
	replaced []domain.OperatingWindow
}

func (f *fakeHoursRepo) GetWeek(_ context.Context, _ int64) ([]domain.OperatingWindow, error) {
	return f.windows, nil
}

func (f *fakeHoursRepo) ReplaceWeek(_ context.Context, _ int64, windows []domain.OperatingWindow) error {
	f.replaced = windows
	return nil
}

type fakeConfigRepo struct {
	configs  []*domain.SlotsConfig
	upserted *domain.SlotsConfig
	deleted  int64
}

func (f *fakeConfigRepo) GetAllBySalon(_ context.Context, _ int64) ([]*domain.SlotsConfig, error) {
	return f.configs, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, c *domain.SlotsConfig) (*domain.SlotsConfig, error) {
	saved := *c
	saved.ID = 55
	f.upserted = &saved
	return &saved, nil
}

func (f *fakeConfigRepo) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	hours   *fakeHoursRepo
	configs *fakeConfigRepo
	catalog *fakeCatalog
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		hours:   &fakeHoursRepo{},
		configs: &fakeConfigRepo{},
		catalog: &fakeCatalog{
			salon:     &catalogservice.Salon{ID: 3, Name: "Velora Downtown", ManagerIDs: []int64{42}},
			therapist: &catalogservice.Therapist{ID: 7, SalonID: 3, FullName: "Anna Keller", IsActive: true},
		},
	}
	f.svc = NewService(f.hours, f.configs, f.catalog, fakeTxManager{}, noopLogger{})
	return f
}

func TestGetWeekSchedule(t *testing.T) {
	f := newFixture()
	f.hours.windows = []domain.OperatingWindow{
		{Weekday: time.Monday, OpensAt: "09:00", ClosesAt: "18:00", IsOpen: true},
		{Weekday: time.Sunday, IsOpen: false},
	}

	resp, err := f.svc.GetWeekSchedule(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, int(time.Monday), resp.Days[0].Weekday)
	assert.True(t, resp.Days[0].IsOpen)
	require.NotNil(t, resp.Days[0].OpensAt)
	assert.Equal(t, "09:00", *resp.Days[0].OpensAt)
	assert.False(t, resp.Days[1].IsOpen)
	assert.Nil(t, resp.Days[1].OpensAt)
}

func TestUpdateWeekSchedule(t *testing.T) {
	validReq := func() *models.UpdateWeekScheduleRequest {
		return &models.UpdateWeekScheduleRequest{
			UserID:      42,
			SalonID:     3,
			TherapistID: 7,
			Days: []models.DaySchedule{
				{Weekday: 1, IsOpen: true, OpensAt: ptr.Ptr("09:00"), ClosesAt: ptr.Ptr("18:00")},
				{Weekday: 0, IsOpen: false},
			},
		}
	}

	t.Run("manager replaces week", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.UpdateWeekSchedule(context.Background(), validReq())
		require.NoError(t, err)

		require.Len(t, f.hours.replaced, 2)
		assert.Equal(t, time.Monday, f.hours.replaced[0].Weekday)
		assert.True(t, f.hours.replaced[0].IsOpen)
		assert.Len(t, resp.Days, 2)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.UserID = 99

		_, err := f.svc.UpdateWeekSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("therapist from another salon rejected", func(t *testing.T) {
		f := newFixture()
		f.catalog.therapist.SalonID = 8

		_, err := f.svc.UpdateWeekSchedule(context.Background(), validReq())
		assert.ErrorIs(t, err, ErrTherapistNotFound)
	})

	t.Run("open day without times rejected", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.Days = []models.DaySchedule{{Weekday: 1, IsOpen: true}}

		_, err := f.svc.UpdateWeekSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.Days = []models.DaySchedule{
			{Weekday: 1, IsOpen: true, OpensAt: ptr.Ptr("18:00"), ClosesAt: ptr.Ptr("09:00")},
		}

		_, err := f.svc.UpdateWeekSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate weekday rejected", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.Days = []models.DaySchedule{
			{Weekday: 1, IsOpen: false},
			{Weekday: 1, IsOpen: false},
		}

		_, err := f.svc.UpdateWeekSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpsertConfig(t *testing.T) {
	validReq := func() *models.UpsertConfigRequest {
		return &models.UpsertConfigRequest{
			UserID:             42,
			SalonID:            3,
			StepMinutes:        15,
			AdminStepMinutes:   30,
			LeadTimeMinutes:    30,
			AdvanceBookingDays: 14,
		}
	}

	t.Run("salon-wide config", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.UpsertConfig(context.Background(), validReq())
		require.NoError(t, err)

		assert.Equal(t, int64(55), resp.ID)
		assert.Nil(t, resp.TherapistID)
		assert.Equal(t, 15, f.configs.upserted.StepMinutes)
	})

	t.Run("therapist override", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.TherapistID = ptr.Ptr(int64(7))

		resp, err := f.svc.UpsertConfig(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.TherapistID)
		assert.Equal(t, int64(7), *resp.TherapistID)
	})

	t.Run("therapist from another salon rejected", func(t *testing.T) {
		f := newFixture()
		f.catalog.therapist.SalonID = 8
		req := validReq()
		req.TherapistID = ptr.Ptr(int64(7))

		_, err := f.svc.UpsertConfig(context.Background(), req)
		assert.ErrorIs(t, err, ErrTherapistNotFound)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		f := newFixture()
		req := validReq()
		req.UserID = 99

		_, err := f.svc.UpsertConfig(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("step out of bounds rejected", func(t *testing.T) {
		f := newFixture()

		req := validReq()
		req.StepMinutes = 3
		_, err := f.svc.UpsertConfig(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validReq()
		req.LeadTimeMinutes = -1
		_, err = f.svc.UpsertConfig(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validReq()
		req.AdvanceBookingDays = 1000
		_, err = f.svc.UpsertConfig(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteConfig(t *testing.T) {
	t.Run("deletes salon config", func(t *testing.T) {
		f := newFixture()
		f.configs.configs = []*domain.SlotsConfig{{ID: 55, SalonID: 3}}

		err := f.svc.DeleteConfig(context.Background(), &models.DeleteConfigRequest{
			UserID: 42, SalonID: 3, ConfigID: 55,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(55), f.configs.deleted)
	})

	t.Run("foreign config not visible", func(t *testing.T) {
		f := newFixture()
		f.configs.configs = []*domain.SlotsConfig{{ID: 55, SalonID: 3}}

		err := f.svc.DeleteConfig(context.Background(), &models.DeleteConfigRequest{
			UserID: 42, SalonID: 3, ConfigID: 77,
		})
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}
