package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("07:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30", ts.String())

	for _, bad := range []string{"7:30am", "25:00", "07:60", "0730", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 20, 7, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("07:00")
	late := TimeString("18:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("07:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:15"), got)

	// Переход через полночь заворачивается
	got, err = TimeString("23:50").AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:10"), got)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("08:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 495, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("07:00").IsZero())
}
