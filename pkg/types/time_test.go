package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple add", start: "10:00", minutes: 45, want: "10:45"},
		{name: "hour rollover", start: "10:50", minutes: 25, want: "11:15"},
		{name: "negative offset", start: "10:00", minutes: -30, want: "09:30"},
		{name: "exactly midnight", start: "23:30", minutes: 30, want: "24:00"},
		{name: "past midnight", start: "23:30", minutes: 31, wantErr: true},
		{name: "before day start", start: "00:10", minutes: -11, wantErr: true},
		{name: "unparseable", start: "later", minutes: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:00"))
	assert.True(t, TimeString("09:00").Equal("09:00"))

	// "24:00" позже любого времени суток
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
	assert.False(t, TimeString("24:00").IsBefore("23:59"))
}

func TestTimeString_MinutesSinceMidnight(t *testing.T) {
	m, err := TimeString("09:30").MinutesSinceMidnight()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = TimeString("24:00").MinutesSinceMidnight()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)

	_, err = TimeString("9:3x").MinutesSinceMidnight()
	assert.Error(t, err)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:05"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres time string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:15:00"))
		assert.Equal(t, TimeString("10:15"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("10:15:00")))
		assert.Equal(t, TimeString("10:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
