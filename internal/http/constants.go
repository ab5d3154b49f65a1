package httpx

// CurrentPage identifiers used by handlers and the layout's content
// dispatch.
const (
	PageHome         = "home"
	PageLogIn        = "log-in"
	PageSignUp       = "sign-up"
	PageForgotEmail  = "forgot-password-send-email"
	PageForgotChange = "forgot-password-change-password"
	PageLoggedIn     = "logged-in"
	PageUnauthorized = "unauthorized"
	PageAlert        = "alert"
	PageNotFound     = "not-found"

	PageUserDetails      = "user-details"
	PageEditUserDetails  = "edit-user-details"
	PageEditUserPassword = "edit-user-password"

	PageEmployeeAccess        = "employee-access-levels"
	PageEditEmployeeAccess    = "edit-employee-access"
	PageConfirmDeleteEmployee = "confirm-delete-employee"

	PageReservations      = "reservation-overview"
	PageBookingsByDate    = "bookings-by-date"
	PageSearchByName      = "search-bookings-by-name"
	PageSearchByEmail     = "search-bookings-by-email"
	PageSearchByID        = "search-bookings-by-id"
	PageCreateBooking     = "create-booking"
	PageEditBooking       = "edit-booking"
	PageDeleteBooking     = "delete-booking"
	PageCreateBlockedSlot = "create-blocked-slot"
	PageEditBlockedSlot   = "edit-blocked-slot"
	PageDeleteBlockedSlot = "delete-blocked-slot"

	PageMenuOverview = "menu-overview"
	PageMenuItemForm = "menu-item-form"
)

// FormMode distinguishes create from edit on shared form templates.
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

//nolint:gochecknoglobals // static read-only lookup; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:         "home-content",
	PageLogIn:        "log-in-content",
	PageSignUp:       "sign-up-content",
	PageForgotEmail:  "forgot-email-content",
	PageForgotChange: "forgot-change-content",
	PageLoggedIn:     "logged-in-content",
	PageUnauthorized: "unauthorized-content",
	PageAlert:        "alert-content",
	PageNotFound:     "not-found-content",

	PageUserDetails:      "user-details-content",
	PageEditUserDetails:  "edit-user-details-content",
	PageEditUserPassword: "edit-user-password-content",

	PageEmployeeAccess:        "employee-access-content",
	PageEditEmployeeAccess:    "edit-employee-access-content",
	PageConfirmDeleteEmployee: "confirm-delete-employee-content",

	PageReservations:      "reservation-overview-content",
	PageBookingsByDate:    "bookings-by-date-content",
	PageSearchByName:      "search-by-name-content",
	PageSearchByEmail:     "search-by-email-content",
	PageSearchByID:        "search-by-id-content",
	PageCreateBooking:     "create-booking-content",
	PageEditBooking:       "edit-booking-content",
	PageDeleteBooking:     "delete-booking-content",
	PageCreateBlockedSlot: "create-blocked-slot-content",
	PageEditBlockedSlot:   "edit-blocked-slot-content",
	PageDeleteBlockedSlot: "delete-blocked-slot-content",

	PageMenuOverview: "menu-overview-content",
	PageMenuItemForm: "menu-item-form-content",
}

// ContentTemplateFor returns the content template for a CurrentPage.
// Unknown pages fall back to the home content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "home-content"
}
