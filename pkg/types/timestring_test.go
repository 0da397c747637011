package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "10:00", want: "10:00"},
		{name: "valid evening time", input: "21:30", want: "21:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty string", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	t.Parallel()

	ts := NewTimeString(time.Date(2026, 9, 15, 14, 45, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:45"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	t.Parallel()

	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple add", start: "10:00", minutes: 70, want: "11:10"},
		{name: "add zero", start: "10:00", minutes: 0, want: "10:00"},
		{name: "exact closing", start: "21:00", minutes: 60, want: "22:00"},
		{name: "crosses midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "negative below zero", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:00").IsAfter("21:59"))
	assert.False(t, TimeString("22:00").IsAfter("22:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Parallel()

	t.Run("scans postgres time string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("scans time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("09:05"), ts)
	})

	t.Run("scans bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("18:00:00")))
		assert.Equal(t, TimeString("18:00"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Parallel()

	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("nonsense").Value()
	assert.Error(t, err)
}
