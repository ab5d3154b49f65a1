package model

// Package model contains pure domain types for the staff portal: alert
// payloads, bookings, blocked slots, menu items, and employee views of
// remote-owned records.

// AlertPayload is the one-shot message handed from a page flow to the
// alert screen. It is always replaced as a whole value, never partially
// updated; the register holding it keeps exactly one pending payload and
// the last write wins.
type AlertPayload struct {
	Heading        string `json:"heading"`
	Message        string `json:"message"`
	ButtonLabel    string `json:"button_label"`
	TargetLocation string `json:"target_location"`
	ErrorCode      string `json:"error_code,omitempty"`
}

// DefaultAlert is the placeholder rendered when no flow has populated the
// register yet, for example when a user navigates to the alert screen
// directly.
func DefaultAlert() AlertPayload {
	return AlertPayload{
		Heading:        "Heading",
		Message:        "A message goes here",
		ButtonLabel:    "Go Somewhere",
		TargetLocation: "/",
	}
}

// IsZero reports whether the payload is entirely unset.
func (a AlertPayload) IsZero() bool { return a == AlertPayload{} }
