package model

import "strings"

// Booking is the portal's view of a table reservation owned by the remote
// API. The client never treats a fetched copy as authoritative past the
// current page visit; every mutation re-submits and trusts the server's
// next response.
type Booking struct {
	ID             string `json:"_id,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email,omitempty"`
	Tel            string `json:"tel,omitempty"`
	SelectedDate   string `json:"selectedDate"`
	SelectedTime   string `json:"selectedTime"`
	NumberOfGuests int    `json:"numberOfGuests,omitempty"`
	Occasion       string `json:"occasion,omitempty"`
	Requests       string `json:"requests,omitempty"`
	TermsAccepted  bool   `json:"termsAccepted,omitempty"`
}

// Blocked-slot records share the booking collection and are distinguished
// only by a sentinel name.
const (
	blockedFirstName = "Blocked"
	blockedLastName  = "Slot"
)

// IsBlockedSlot reports whether this record marks a blocked time slot
// rather than a real reservation.
func (b Booking) IsBlockedSlot() bool {
	return b.FirstName == blockedFirstName && b.LastName == blockedLastName
}

// BlockedSlot builds the sentinel record for blocking a time slot.
func BlockedSlot(id, date, wireTime string) Booking {
	return Booking{
		ID:           id,
		FirstName:    blockedFirstName,
		LastName:     blockedLastName,
		SelectedDate: date,
		SelectedTime: wireTime,
	}
}

// DisplayTime converts a 4-digit wire time ("1730") to its display form
// ("17:30") by inserting a colon after the hour digits. Values that are
// not 4 digits are returned unchanged.
func DisplayTime(wire string) string {
	if len(wire) != 4 || strings.ContainsRune(wire, ':') {
		return wire
	}
	return wire[:2] + ":" + wire[2:]
}

// WireTime converts a display time ("17:30") back to the 4-digit wire
// form ("1730") expected by the remote API.
func WireTime(display string) string {
	return strings.ReplaceAll(display, ":", "")
}
