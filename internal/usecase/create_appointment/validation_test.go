package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/pkg/ptr"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	valid := func() *Request {
		return &Request{
			ClientID:   "client-1",
			BarberID:   101,
			SiteID:     1,
			ServiceIDs: []int64{201},
			Date:       date(2026, 9, 15),
			StartTime:  "14:00",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	t.Run("missing client id", func(t *testing.T) {
		req := valid()
		req.ClientID = "  "
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing services", func(t *testing.T) {
		req := valid()
		req.ServiceIDs = nil
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("too many services", func(t *testing.T) {
		req := valid()
		req.ServiceIDs = make([]int64, domain.MaxServicesPerAppointment+1)
		for i := range req.ServiceIDs {
			req.ServiceIDs[i] = int64(i + 1)
		}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive service id", func(t *testing.T) {
		req := valid()
		req.ServiceIDs = []int64{201, 0}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing date", func(t *testing.T) {
		req := valid()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := valid()
		req.StartTime = "25:99"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := valid()
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'a'
		}
		req.Notes = ptr.Ptr(string(long))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateSlotGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startTime types.TimeString
		wantErr   error
	}{
		{name: "opening hour", startTime: "10:00"},
		{name: "last hour of the day", startTime: "21:00"},
		{name: "midday", startTime: "14:00"},
		{name: "not on the hour", startTime: "14:30", wantErr: ErrInvalidTimeSlot},
		{name: "before opening", startTime: "09:00", wantErr: ErrInvalidTimeSlot},
		{name: "at closing", startTime: "22:00", wantErr: ErrInvalidTimeSlot},
		{name: "after closing", startTime: "23:00", wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotGrid(tt.startTime)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateLeadTime(t *testing.T) {
	t.Parallel()

	now := at(2026, 9, 15, 18, 0) // 18:00

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		wantErr   error
	}{
		{name: "yesterday is rejected", date: date(2026, 9, 14), startTime: "19:00", wantErr: ErrPastOrTooSoon},
		{name: "today before now", date: date(2026, 9, 15), startTime: "17:00", wantErr: ErrPastOrTooSoon},
		{name: "today within lead window", date: date(2026, 9, 15), startTime: "18:10", wantErr: ErrPastOrTooSoon},
		{name: "today just inside lead window", date: date(2026, 9, 15), startTime: "18:39", wantErr: ErrPastOrTooSoon},
		{name: "today exactly at lead boundary", date: date(2026, 9, 15), startTime: "18:40"},
		{name: "today after lead window", date: date(2026, 9, 15), startTime: "18:50"},
		{name: "tomorrow any hour", date: date(2026, 9, 16), startTime: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLeadTime(tt.date, tt.startTime, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateLeadTime_NearMidnight(t *testing.T) {
	t.Parallel()

	// 23:30 + 40 минут переходит границу суток, запись на сегодня невозможна
	now := at(2026, 9, 15, 23, 30)
	err := validateLeadTime(date(2026, 9, 15), "23:50", now)
	assert.ErrorIs(t, err, ErrPastOrTooSoon)
}

func TestValidateClosingTime(t *testing.T) {
	t.Parallel()

	t.Run("ends before closing", func(t *testing.T) {
		end, err := validateClosingTime("14:00", 70)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("15:10"), end)
	})

	t.Run("ends exactly at closing", func(t *testing.T) {
		end, err := validateClosingTime("21:00", 60)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("22:00"), end)
	})

	t.Run("ends after closing", func(t *testing.T) {
		_, err := validateClosingTime("21:00", 90)
		assert.ErrorIs(t, err, ErrExceedsClosing)
	})

	t.Run("crosses midnight", func(t *testing.T) {
		_, err := validateClosingTime("21:00", 300)
		assert.ErrorIs(t, err, ErrExceedsClosing)
	})
}

func TestAggregateServices(t *testing.T) {
	t.Parallel()

	catalog := []*domain.Service{
		{ID: 201, Name: "Haircut", Price: 25000, DurationMinutes: 45},
		{ID: 203, Name: "Head shave", Price: 15000, DurationMinutes: 25},
	}

	t.Run("sums price and duration in request order", func(t *testing.T) {
		price, duration, names, err := aggregateServices([]int64{201, 203}, catalog)
		require.NoError(t, err)
		assert.Equal(t, 40000.0, price)
		assert.Equal(t, 70, duration)
		assert.Equal(t, []string{"Haircut", "Head shave"}, names)
	})

	t.Run("unknown id fails the whole aggregation", func(t *testing.T) {
		_, _, _, err := aggregateServices([]int64{201, 999}, catalog)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("duplicate id counts twice", func(t *testing.T) {
		price, duration, _, err := aggregateServices([]int64{203, 203}, catalog)
		require.NoError(t, err)
		assert.Equal(t, 30000.0, price)
		assert.Equal(t, 50, duration)
	})
}

func TestHasOverlappingAppointment(t *testing.T) {
	t.Parallel()

	appointments := []*domain.Appointment{
		{ID: "apt-1", StartTime: "14:00", DurationMinutes: 45, Status: domain.StatusActive},
		{ID: "apt-2", StartTime: "16:00", DurationMinutes: 60, Status: domain.StatusCancelledByClient},
	}

	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
		excludeID string
		want      bool
	}{
		{name: "overlap in the middle", startTime: "14:30", duration: 30, want: true},
		{name: "new covers existing", startTime: "13:00", duration: 180, want: true},
		{name: "touching end is free", startTime: "14:45", duration: 30, want: false},
		{name: "touching start is free", startTime: "13:00", duration: 60, want: false},
		{name: "cancelled appointment ignored", startTime: "16:00", duration: 60, want: false},
		{name: "excluded appointment ignored", startTime: "14:00", duration: 45, excludeID: "apt-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasOverlappingAppointment(tt.startTime, tt.duration, appointments, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
