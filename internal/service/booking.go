package service

import (
	"context"
	"log/slog"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/ports"
)

// slotBlockedMessage is the literal the remote API returns when a guest
// or staff member tries to book a blocked time slot.
const slotBlockedMessage = "This time slot is blocked and cannot be booked."

// BookingAPI is the slice of the remote client the reservation flows
// need.
type BookingAPI interface {
	BookingByID(ctx context.Context, id string) (model.Booking, error)
	CreateBooking(ctx context.Context, b model.Booking) error
	UpdateBooking(ctx context.Context, id string, b model.Booking) error
	DeleteBooking(ctx context.Context, id string) error
	BookingsByDate(ctx context.Context, isoDate string) ([]model.Booking, error)
	BookingsByName(ctx context.Context, firstName, lastName string) ([]model.Booking, error)
	BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error)
	PruneAll(ctx context.Context) (api.PruneResult, error)
	BlockedSlotByID(ctx context.Context, id string) (model.Booking, error)
	CreateBlockedSlot(ctx context.Context, isoDate, wireTime string) error
	UpdateBlockedSlot(ctx context.Context, id string, b model.Booking) error
	DeleteBlockedSlot(ctx context.Context, id string) error
}

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	API    BookingAPI // Required: remote API client
	Audit  ports.AuditRecorder
	Logger *slog.Logger
}

// BookingService drives the table-reservation flows. Times cross this
// boundary in display form ("17:30") and leave for the wire in 4-digit
// form ("1730").
type BookingService struct {
	api    BookingAPI
	audit  ports.AuditRecorder
	logger *slog.Logger
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{api: opts.API, audit: opts.Audit, logger: opts.Logger}
}

// IsSlotBlocked reports whether the error is the remote API refusing a
// booking because its slot is blocked. That case gets its own alert.
func IsSlotBlocked(err error) bool {
	return api.ErrorMessage(err) == slotBlockedMessage
}

// BookingByID loads one reservation with its time in display form.
func (s *BookingService) BookingByID(ctx context.Context, id string) (model.Booking, error) {
	b, err := s.api.BookingByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	b.SelectedTime = model.DisplayTime(b.SelectedTime)
	return b, nil
}

// Create submits a new reservation on a guest's behalf.
func (s *BookingService) Create(ctx context.Context, actor string, b model.Booking) error {
	b.SelectedTime = model.WireTime(b.SelectedTime)
	b.TermsAccepted = true
	err := s.api.CreateBooking(ctx, b)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "create", EntityKind: "booking", Outcome: outcomeOf(err),
	})
	return err
}

// Update re-submits the full reservation payload.
func (s *BookingService) Update(ctx context.Context, actor, id string, b model.Booking) error {
	b.SelectedTime = model.WireTime(b.SelectedTime)
	err := s.api.UpdateBooking(ctx, id, b)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update", EntityKind: "booking", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// Delete removes a reservation.
func (s *BookingService) Delete(ctx context.Context, actor, id string) error {
	err := s.api.DeleteBooking(ctx, id)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "delete", EntityKind: "booking", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// ByDate lists reservations and blocked slots for one date, times in
// display form.
func (s *BookingService) ByDate(ctx context.Context, isoDate string) ([]model.Booking, error) {
	return s.displayTimes(s.api.BookingsByDate(ctx, isoDate))
}

// ByName searches reservations by guest name.
func (s *BookingService) ByName(ctx context.Context, firstName, lastName string) ([]model.Booking, error) {
	return s.displayTimes(s.api.BookingsByName(ctx, firstName, lastName))
}

// ByEmail searches reservations by guest email.
func (s *BookingService) ByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.displayTimes(s.api.BookingsByEmail(ctx, email))
}

func (s *BookingService) displayTimes(bookings []model.Booking, err error) ([]model.Booking, error) {
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].SelectedTime = model.DisplayTime(bookings[i].SelectedTime)
	}
	return bookings, nil
}

// Prune deletes every booking and blocked slot dated before today.
func (s *BookingService) Prune(ctx context.Context, actor string) (api.PruneResult, error) {
	res, err := s.api.PruneAll(ctx)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "prune", EntityKind: "booking", Outcome: outcomeOf(err),
	})
	return res, err
}

// BlockedSlotByID loads one blocked slot, time in display form.
func (s *BookingService) BlockedSlotByID(ctx context.Context, id string) (model.Booking, error) {
	b, err := s.api.BlockedSlotByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	b.SelectedTime = model.DisplayTime(b.SelectedTime)
	return b, nil
}

// BlockSlot blocks a date/time from being booked.
func (s *BookingService) BlockSlot(ctx context.Context, actor, isoDate, displayTime string) error {
	err := s.api.CreateBlockedSlot(ctx, isoDate, model.WireTime(displayTime))
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "create", EntityKind: "blocked-slot", Outcome: outcomeOf(err),
	})
	return err
}

// UpdateBlockedSlot re-submits a blocked slot record.
func (s *BookingService) UpdateBlockedSlot(ctx context.Context, actor, id string, b model.Booking) error {
	b.SelectedTime = model.WireTime(b.SelectedTime)
	err := s.api.UpdateBlockedSlot(ctx, id, b)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update", EntityKind: "blocked-slot", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// UnblockSlot removes a blocked slot.
func (s *BookingService) UnblockSlot(ctx context.Context, actor, id string) error {
	err := s.api.DeleteBlockedSlot(ctx, id)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "delete", EntityKind: "blocked-slot", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}
