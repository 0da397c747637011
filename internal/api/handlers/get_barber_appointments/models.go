package get_barber_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

// parseFilter собирает фильтр расписания барбера из query параметров
func parseFilter(barberID int64, query url.Values) (*models.GetBarberAppointmentsRequest, error) {
	req := &models.GetBarberAppointmentsRequest{
		BarberID: barberID,
	}

	// date задаёт расписание на один день и эквивалентен startDate=endDate
	if v := query.Get("date"); v != "" {
		day, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &day
		req.EndDate = &day
	} else {
		if v := query.Get("startDate"); v != "" {
			startDate, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, err
			}
			req.StartDate = &startDate
		}

		if v := query.Get("endDate"); v != "" {
			endDate, err := time.Parse(domain.DateFormat, v)
			if err != nil {
				return nil, err
			}
			req.EndDate = &endDate
		}
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
