package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/service"
)

const reservationsPath = "/table-reservation-overview"

// ReservationOverview renders the reservations hub.
func (h *UIHandlers) ReservationOverview(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Table Reservations", CurrentPage: PageReservations}).Build())
}

// ViewBookingsByDate lists reservations and blocked slots for one date.
// Defaults to today; an empty day renders an empty list, not an alert.
func (h *UIHandlers) ViewBookingsByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	bookings, err := h.Bookings.ByDate(r.Context(), date)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Fetch Error",
			Message:        "An error occurred while retrieving bookings for this date. Please try again.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Bookings by Date", CurrentPage: PageBookingsByDate}).
		With("Date", date).
		With("Bookings", bookings).
		Build())
}

// SearchBookingsByNameForm renders the name search form.
func (h *UIHandlers) SearchBookingsByNameForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Search by Name", CurrentPage: PageSearchByName}).Build())
}

// SearchBookingsByNameSubmit runs the search and renders matches
// inline. A fruitless search is its own 404 alert.
func (h *UIHandlers) SearchBookingsByNameSubmit(w http.ResponseWriter, r *http.Request) {
	firstName := r.FormValue("firstName")
	lastName := r.FormValue("lastName")
	data := NewTemplateData(r, PageMeta{Title: "Search by Name", CurrentPage: PageSearchByName}).
		With("FirstName", firstName).
		With("LastName", lastName)

	if firstName == "" && lastName == "" {
		h.render(w, data.WithError("Please enter at least a first name or last name.").Build())
		return
	}

	bookings, err := h.Bookings.ByName(r.Context(), firstName, lastName)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "No Bookings Found",
			Message:        "No bookings matched that name. Try adjusting your search.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, data.With("Bookings", bookings).With("Searched", true).Build())
}

// SearchBookingsByEmailForm renders the email search form.
func (h *UIHandlers) SearchBookingsByEmailForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Search by Email", CurrentPage: PageSearchByEmail}).Build())
}

// SearchBookingsByEmailSubmit runs the search and renders matches
// inline.
func (h *UIHandlers) SearchBookingsByEmailSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	data := NewTemplateData(r, PageMeta{Title: "Search by Email", CurrentPage: PageSearchByEmail}).
		With("Email", email)

	if errs := service.ValidateEmail(email); errs.Any() {
		h.render(w, data.WithFieldErrors(errs).Build())
		return
	}

	bookings, err := h.Bookings.ByEmail(r.Context(), email)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Search Failed!",
			Message:        "We could not find bookings for this email address.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, data.With("Bookings", bookings).With("Searched", true).Build())
}

// SearchBookingsByIDForm renders the ID search form.
func (h *UIHandlers) SearchBookingsByIDForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Search by ID", CurrentPage: PageSearchByID}).Build())
}

// SearchBookingsByIDSubmit looks up one booking and shows it inline
// with edit and delete links.
func (h *UIHandlers) SearchBookingsByIDSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("bookingId")
	data := NewTemplateData(r, PageMeta{Title: "Search by ID", CurrentPage: PageSearchByID}).
		With("BookingID", id)

	if id == "" {
		h.render(w, data.WithError("Please enter a booking ID.").Build())
		return
	}

	booking, err := h.Bookings.BookingByID(r.Context(), id)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Booking Not Found!",
			Message:        "We could not find a booking with this ID.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, data.With("Booking", booking).With("Searched", true).Build())
}

// CreateBookingForm renders the reservation form.
func (h *UIHandlers) CreateBookingForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Create Booking", CurrentPage: PageCreateBooking}).
		With("Booking", model.Booking{}).
		Build())
}

// CreateBookingSubmit submits the reservation. A blocked slot gets its
// own alert; any other failure gets the generic booking failure.
func (h *UIHandlers) CreateBookingSubmit(w http.ResponseWriter, r *http.Request) {
	booking := bookingFromForm(r)

	if errs := validateBookingForm(booking); errs.Any() {
		h.render(w, NewTemplateData(r, PageMeta{Title: "Create Booking", CurrentPage: PageCreateBooking}).
			WithFieldErrors(errs).
			With("Booking", booking).
			Build())
		return
	}

	err := h.Bookings.Create(r.Context(), actor(r), booking)
	switch {
	case err == nil:
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Booking Created!",
			Message:        "Your booking was successfully created.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
	case service.IsSlotBlocked(err):
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Time Slot Blocked",
			Message:        "This time slot has been blocked and cannot be booked. Please select another time.",
			ButtonLabel:    "Back to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
	default:
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Booking Failed",
			Message:        "There was an error submitting your booking. Please try again.",
			ButtonLabel:    "Back to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
	}
}

// EditBookingForm loads the reservation into the edit form.
func (h *UIHandlers) EditBookingForm(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.BookingByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Booking Not Found!",
			Message:        "This booking could not be found.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Booking", CurrentPage: PageEditBooking}).
		With("Booking", booking).
		Build())
}

// EditBookingSubmit re-submits the full reservation payload.
func (h *UIHandlers) EditBookingSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	booking := bookingFromForm(r)

	if errs := validateBookingForm(booking); errs.Any() {
		booking.ID = id
		h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Booking", CurrentPage: PageEditBooking}).
			WithFieldErrors(errs).
			With("Booking", booking).
			Build())
		return
	}

	if err := h.Bookings.Update(r.Context(), actor(r), id, booking); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Update Failed!",
			Message:        "There was an error, the reservation was not updated.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "501",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Update Successful!",
		Message:        "The reservation has been updated successfully.",
		ButtonLabel:    "Go to Table Reservation Overview",
		TargetLocation: reservationsPath,
	})
}

// DeleteBookingForm shows the reservation about to be removed.
func (h *UIHandlers) DeleteBookingForm(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.BookingByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Reservation Not Found!",
			Message:        "The reservation could not be found.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Delete Booking", CurrentPage: PageDeleteBooking}).
		With("Booking", booking).
		Build())
}

// DeleteBookingSubmit removes the reservation. A refused delete never
// renders the success alert.
func (h *UIHandlers) DeleteBookingSubmit(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Delete(r.Context(), actor(r), r.PathValue("id")); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Deletion Failed!",
			Message:        "There was an error, the reservation could not be deleted.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "502",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Reservation Deleted!",
		Message:        "The reservation has been deleted successfully.",
		ButtonLabel:    "Return to Table Reservation Overview",
		TargetLocation: reservationsPath,
	})
}

// CreateBlockedSlotForm renders the block-a-slot form.
func (h *UIHandlers) CreateBlockedSlotForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Block Time Slot", CurrentPage: PageCreateBlockedSlot}).Build())
}

// CreateBlockedSlotSubmit blocks a date and time from being booked.
func (h *UIHandlers) CreateBlockedSlotSubmit(w http.ResponseWriter, r *http.Request) {
	date := r.FormValue("selectedDate")
	slotTime := r.FormValue("selectedTime")

	if date == "" || slotTime == "" {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Missing Information",
			Message:        "Please select both a date and a time to block.",
			ButtonLabel:    "Back to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
		return
	}

	if err := h.Bookings.BlockSlot(r.Context(), actor(r), date, slotTime); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Blocking Failed!",
			Message:        "Failed to create blocked slot. Please try again.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Time Slot Blocked!",
		Message:        "The selected time slot has been blocked successfully.",
		ButtonLabel:    "Go to Table Reservation Overview",
		TargetLocation: reservationsPath,
	})
}

// EditBlockedSlotForm loads a blocked slot into the edit form.
func (h *UIHandlers) EditBlockedSlotForm(w http.ResponseWriter, r *http.Request) {
	slot, err := h.Bookings.BlockedSlotByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Blocked Slot Not Found!",
			Message:        "The blocked time slot could not be found.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Blocked Slot", CurrentPage: PageEditBlockedSlot}).
		With("Slot", slot).
		Build())
}

// EditBlockedSlotSubmit re-submits the blocked slot record.
func (h *UIHandlers) EditBlockedSlotSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	slot := model.BlockedSlot(id, r.FormValue("selectedDate"), r.FormValue("selectedTime"))

	if err := h.Bookings.UpdateBlockedSlot(r.Context(), actor(r), id, slot); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Update Failed!",
			Message:        "The blocked time slot could not be updated.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "502",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Blocked Time Slot Updated!",
		Message:        "The blocked time slot has been updated successfully.",
		ButtonLabel:    "Go to Table Reservation Overview",
		TargetLocation: reservationsPath,
	})
}

// DeleteBlockedSlotForm shows the blocked slot about to be removed.
func (h *UIHandlers) DeleteBlockedSlotForm(w http.ResponseWriter, r *http.Request) {
	slot, err := h.Bookings.BlockedSlotByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Blocked Slot Not Found!",
			Message:        "The blocked time slot could not be found.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "404",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Delete Blocked Slot", CurrentPage: PageDeleteBlockedSlot}).
		With("Slot", slot).
		Build())
}

// DeleteBlockedSlotSubmit removes the blocked slot.
func (h *UIHandlers) DeleteBlockedSlotSubmit(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.UnblockSlot(r.Context(), actor(r), r.PathValue("id")); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Deletion Failed!",
			Message:        "The blocked time slot could not be deleted.",
			ButtonLabel:    "Go to Blocked Times Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "502",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Blocked Time Slot Deleted!",
		Message:        "The blocked time slot has been deleted successfully.",
		ButtonLabel:    "Return to Blocked Times Overview",
		TargetLocation: reservationsPath,
	})
}

// PruneAllBookings deletes every booking and blocked slot dated before
// today and reports the counts in the success alert.
func (h *UIHandlers) PruneAllBookings(w http.ResponseWriter, r *http.Request) {
	res, err := h.Bookings.Prune(r.Context(), actor(r))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Prune Failed!",
			Message:        "An error occurred while deleting old bookings.",
			ButtonLabel:    "Go to Table Reservation Overview",
			TargetLocation: reservationsPath,
			ErrorCode:      "502",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading: "Prune Successful!",
		Message: fmt.Sprintf("%d bookings and %d blocked slots were deleted.",
			res.DeletedBookings, res.DeletedBlockedSlots),
		ButtonLabel:    "Return to Table Reservation Overview",
		TargetLocation: reservationsPath,
	})
}

func bookingFromForm(r *http.Request) model.Booking {
	guests := 0
	if _, err := fmt.Sscanf(r.FormValue("numberOfGuests"), "%d", &guests); err != nil {
		guests = 0
	}
	return model.Booking{
		FirstName:      r.FormValue("firstName"),
		LastName:       r.FormValue("lastName"),
		Email:          r.FormValue("email"),
		Tel:            r.FormValue("tel"),
		SelectedDate:   r.FormValue("selectedDate"),
		SelectedTime:   r.FormValue("selectedTime"),
		NumberOfGuests: guests,
		Occasion:       r.FormValue("occasion"),
		Requests:       r.FormValue("requests"),
	}
}

func validateBookingForm(b model.Booking) service.FieldErrors {
	errs := service.ValidateRequired(map[string]string{
		"firstName":    b.FirstName,
		"lastName":     b.LastName,
		"email":        b.Email,
		"tel":          b.Tel,
		"selectedDate": b.SelectedDate,
		"selectedTime": b.SelectedTime,
	})
	if b.Email != "" {
		for key, msg := range service.ValidateEmail(b.Email) {
			if key == "email" {
				errs["email"] = msg
			}
		}
	}
	if b.NumberOfGuests < 1 {
		errs["numberOfGuests"] = "Please enter the number of guests"
	}
	return errs
}
