package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "17:30", DisplayTime("1730"))
	assert.Equal(t, "09:05", DisplayTime("0905"))
	// Not a 4-digit wire value, leave alone.
	assert.Equal(t, "17:30", DisplayTime("17:30"))
	assert.Equal(t, "", DisplayTime(""))
	assert.Equal(t, "173", DisplayTime("173"))
}

func TestWireTime(t *testing.T) {
	assert.Equal(t, "1730", WireTime("17:30"))
	assert.Equal(t, "1730", WireTime("1730"))
	assert.Equal(t, "", WireTime(""))
}

func TestTimeRoundTrip(t *testing.T) {
	for _, wire := range []string{"0000", "0905", "1200", "1730", "2359"} {
		assert.Equal(t, DisplayTime(wire), DisplayTime(WireTime(DisplayTime(wire))), wire)
		assert.Equal(t, wire, WireTime(DisplayTime(wire)), wire)
	}
}

func TestIsBlockedSlot(t *testing.T) {
	assert.True(t, Booking{FirstName: "Blocked", LastName: "Slot"}.IsBlockedSlot())
	assert.False(t, Booking{FirstName: "Blocked", LastName: "Smith"}.IsBlockedSlot())
	assert.False(t, Booking{FirstName: "Jane", LastName: "Slot"}.IsBlockedSlot())
	assert.False(t, Booking{}.IsBlockedSlot())
}

func TestBlockedSlot(t *testing.T) {
	b := BlockedSlot("abc123", "2026-09-01", "1900")
	assert.True(t, b.IsBlockedSlot())
	assert.Equal(t, "abc123", b.ID)
	assert.Equal(t, "2026-09-01", b.SelectedDate)
	assert.Equal(t, "1900", b.SelectedTime)
}
