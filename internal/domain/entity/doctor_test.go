package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAvailability() Availability {
	return Availability{
		{Day: "Monday", Slots: []string{"9:00 AM", "10:00 AM"}},
		{Day: "Tuesday", Slots: []string{"2:00 PM"}},
		{Day: "Wednesday", Slots: []string{}},
	}
}

func TestAvailability_SlotsFor(t *testing.T) {
	a := testAvailability()

	assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, a.SlotsFor("Monday"))
	assert.Empty(t, a.SlotsFor("Wednesday"))
	assert.Nil(t, a.SlotsFor("Sunday"))
}

func TestAvailability_HasSlot(t *testing.T) {
	a := testAvailability()

	assert.True(t, a.HasSlot("Monday", "9:00 AM"))
	assert.True(t, a.HasSlot("Tuesday", "2:00 PM"))
	assert.False(t, a.HasSlot("Monday", "2:00 PM"))
	assert.False(t, a.HasSlot("Wednesday", "9:00 AM"))
	assert.False(t, a.HasSlot("Sunday", "9:00 AM"))
}

func TestAvailability_ScanRoundTrip(t *testing.T) {
	original := testAvailability()

	value, err := original.Value()
	require.NoError(t, err)
	require.NotNil(t, value)

	var scanned Availability
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestAvailability_ScanNil(t *testing.T) {
	scanned := testAvailability()
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestAvailability_ScanString(t *testing.T) {
	raw, err := json.Marshal(testAvailability())
	require.NoError(t, err)

	var scanned Availability
	require.NoError(t, scanned.Scan(string(raw)))
	assert.Equal(t, testAvailability(), scanned)
}

func TestAvailability_ValueEmpty(t *testing.T) {
	var a Availability
	value, err := a.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
