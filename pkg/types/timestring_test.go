package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("abc")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	result, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", result.String())

	result, err = ts.AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "10:00", result.String())
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("20:00").IsAfter(TimeString("19:59")))
	assert.False(t, TimeString("19:59").IsAfter(TimeString("20:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL отдаёт TIME как "10:00:00"
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, "18:30", ts.String())
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("01:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)
}
