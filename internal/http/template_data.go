package httpx

import (
	"net/http"

	domainauth "github.com/moness/staff-portal/internal/domain/auth"
)

// PageMeta identifies a page for the layout.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// TemplateDataBuilder provides a fluent API for building template data
// maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData seeds template data with the page meta and the chrome
// flags derived from the browser session. ShowChrome is the display
// gate: navigation renders only when the session asked for it and the
// role is Manager or Allowed.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	sess := SessionFromContext(r.Context())
	return &TemplateDataBuilder{data: map[string]any{
		"Title":       meta.Title,
		"CurrentPage": meta.CurrentPage,
		"ShowChrome":  sess.ChromeVisible(),
		"IsManager":   sess.Role == domainauth.RoleManager,
		"FirstName":   sess.FirstName,
		"CSRFToken":   GetCSRFToken(r),
	}}
}

// WithError sets a general error message rendered above the form.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
