package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-spa/SchedulingService/internal/domain"
	bookingRepo "github.com/velora-spa/SchedulingService/internal/infra/storage/booking"
	"github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	"github.com/velora-spa/SchedulingService/internal/service/bookings/models"
	"github.com/velora-spa/SchedulingService/pkg/ptr"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeCatalog struct {
	salon *catalogservice.Salon
}

func (f *fakeCatalog) GetSalon(_ context.Context, _ int64) (*catalogservice.Salon, error) {
	if f.salon == nil {
		return nil, catalogservice.ErrSalonNotFound
	}
	return f.salon, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              10,
		UserID:          1,
		SalonID:         3,
		TherapistID:     7,
		ServiceID:       12,
		BookingDate:     types.CalendarDate{Year: 2026, Month: 3, Day: 3},
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		ServiceName:     "Deep tissue massage",
		TherapistName:   "Anna Keller",
	}
}

func newService(repo *fakeBookingRepo, catalog *fakeCatalog) *Service {
	return NewService(repo, catalog, noopLogger{})
}

func salonWithManager(managerID int64) *catalogservice.Salon {
	return &catalogservice.Salon{ID: 3, Name: "Velora Downtown", ManagerIDs: []int64{managerID}}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "11:00", resp.EndTime)
	})

	t.Run("manager can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, 1)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{pendingBooking()}}
	svc := newService(repo, &fakeCatalog{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 1,
			Status: ptr.Ptr("unknown"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetSalonBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{pendingBooking()}}
	svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

	t.Run("manager allowed", func(t *testing.T) {
		resp, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
			UserID:  42,
			SalonID: 3,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		_, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
			UserID:  1,
			SalonID: 3,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("inverted date range rejected", func(t *testing.T) {
		_, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
			UserID:    42,
			SalonID:   3,
			StartDate: &types.CalendarDate{Year: 2026, Month: 3, Day: 10},
			EndDate:   &types.CalendarDate{Year: 2026, Month: 3, Day: 1},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels own booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
			UserID:             1,
			CancellationReason: "plans changed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
		assert.Equal(t, "plans changed", repo.cancelledReason)
	})

	t.Run("manager cancels client booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledBySalon, repo.cancelledStatus)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusCompleted
		repo := &fakeBookingRepo{booking: b}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("manager updates status", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			UserID: 42,
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	})

	t.Run("client denied", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			UserID: 1,
			Status: "confirmed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		svc := newService(repo, &fakeCatalog{salon: salonWithManager(42)})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			UserID: 42,
			Status: "totally-bogus",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
