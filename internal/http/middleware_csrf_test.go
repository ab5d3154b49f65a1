package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCSRFSetsCookieOnFirstVisit(t *testing.T) {
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "csrf_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/log-in", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFRejectsMismatchedFormToken(t *testing.T) {
	form := url.Values{"csrf_token": {"forged"}}
	req := httptest.NewRequest(http.MethodPost, "/log-in", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "genuine"})

	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsMatchingFormToken(t *testing.T) {
	form := url.Values{"csrf_token": {"genuine"}}
	req := httptest.NewRequest(http.MethodPost, "/log-in", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "genuine"})

	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFAcceptsMatchingHeaderToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/log-in", nil)
	req.Header.Set("X-Csrf-Token", "genuine")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "genuine"})

	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
