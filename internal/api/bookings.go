package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/model"
)

// Table endpoints are public on the remote API: bookings are created by
// guests, so no bearer credential is attached.

// BookingByID fetches a single reservation.
func (c *Client) BookingByID(ctx context.Context, id string) (model.Booking, error) {
	env, err := c.call(ctx, http.MethodGet, "/table/"+id, "", nil)
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := env.extract("payload", &b); err != nil {
		return model.Booking{}, fmt.Errorf("extract booking: %w", err)
	}
	return b, nil
}

// CreateBooking submits a new reservation. SelectedTime must already be
// in wire form (4 digits, no colon).
func (c *Client) CreateBooking(ctx context.Context, b model.Booking) error {
	_, err := c.call(ctx, http.MethodPost, "/table/", "", b)
	return err
}

// UpdateBooking re-submits the full reservation payload.
func (c *Client) UpdateBooking(ctx context.Context, id string, b model.Booking) error {
	_, err := c.call(ctx, http.MethodPatch, "/table/"+id, "", b)
	return err
}

// DeleteBooking removes a reservation.
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/table/"+id, "", nil)
	return err
}

// BookingsByDate lists reservations and blocked slots for a date. The
// list rides under "bookings", not "payload".
func (c *Client) BookingsByDate(ctx context.Context, isoDate string) ([]model.Booking, error) {
	return c.filterBookings(ctx, "/table/filter/by-date", map[string]string{"selectedDate": isoDate})
}

// BookingsByName searches reservations by guest name. Either name part
// may be empty, but not both.
func (c *Client) BookingsByName(ctx context.Context, firstName, lastName string) ([]model.Booking, error) {
	body := map[string]string{}
	if firstName != "" {
		body["firstName"] = firstName
	}
	if lastName != "" {
		body["lastName"] = lastName
	}
	return c.filterBookings(ctx, "/table/filter/by-name", body)
}

// BookingsByEmail searches reservations by guest email.
func (c *Client) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return c.filterBookings(ctx, "/table/filter/by-email", map[string]string{"email": email})
}

func (c *Client) filterBookings(ctx context.Context, path string, body map[string]string) ([]model.Booking, error) {
	env, err := c.call(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := env.extract("bookings", &bookings); err != nil {
		return nil, fmt.Errorf("extract bookings: %w", err)
	}
	return bookings, nil
}

// PruneResult reports how many stale records the prune removed.
type PruneResult struct {
	DeletedBookings     int
	DeletedBlockedSlots int
}

// PruneAll deletes every booking and blocked slot dated before today.
func (c *Client) PruneAll(ctx context.Context) (PruneResult, error) {
	env, err := c.call(ctx, http.MethodDelete, "/table/prune/prune-all", "", nil)
	if err != nil {
		return PruneResult{}, err
	}
	bookings, err := env.extractInt("deletedTableBookings")
	if err != nil {
		return PruneResult{}, fmt.Errorf("extract prune counters: %w", err)
	}
	blocked, err := env.extractInt("deletedBlockedTables")
	if err != nil {
		return PruneResult{}, fmt.Errorf("extract prune counters: %w", err)
	}
	return PruneResult{DeletedBookings: bookings, DeletedBlockedSlots: blocked}, nil
}

// BlockedSlotByID fetches a blocked-slot record.
func (c *Client) BlockedSlotByID(ctx context.Context, id string) (model.Booking, error) {
	env, err := c.call(ctx, http.MethodGet, "/table/blocked/"+id, "", nil)
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := env.extract("payload", &b); err != nil {
		return model.Booking{}, fmt.Errorf("extract blocked slot: %w", err)
	}
	return b, nil
}

// CreateBlockedSlot blocks a date/time from being booked.
func (c *Client) CreateBlockedSlot(ctx context.Context, isoDate, wireTime string) error {
	_, err := c.call(ctx, http.MethodPost, "/table/blocked", "", map[string]string{
		"selectedDate": isoDate,
		"selectedTime": wireTime,
	})
	return err
}

// UpdateBlockedSlot re-submits a blocked-slot record.
func (c *Client) UpdateBlockedSlot(ctx context.Context, id string, b model.Booking) error {
	_, err := c.call(ctx, http.MethodPatch, "/table/blocked/"+id, "", b)
	return err
}

// DeleteBlockedSlot unblocks a time slot.
func (c *Client) DeleteBlockedSlot(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/table/blocked/"+id, "", nil)
	return err
}
