package get_salon_bookings

import (
	"net/url"
	"strconv"

	"github.com/velora-spa/SchedulingService/internal/service/bookings/models"
	"github.com/velora-spa/SchedulingService/pkg/types"
)

// ParseFilter собирает фильтр бронирований салона из query параметров.
// Поддерживаются: therapistId, startDate, endDate, status, includeInactive.
func ParseFilter(salonID, userID int64, query url.Values) (*models.GetSalonBookingsRequest, error) {
	req := &models.GetSalonBookingsRequest{
		SalonID: salonID,
		UserID:  userID,
	}

	if v := query.Get("therapistId"); v != "" {
		therapistID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TherapistID = &therapistID
	}

	if v := query.Get("startDate"); v != "" {
		date, err := types.ParseCalendarDate(v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := types.ParseCalendarDate(v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
