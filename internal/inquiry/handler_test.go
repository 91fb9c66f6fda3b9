package inquiry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SchoolSite/internal/inquiry"
)

func setupRoutes(svc *inquiry.Service) *echo.Echo {
	h := inquiry.NewHandler(svc)
	e := echo.New()
	e.POST("/admissions/inquiry", h.SubmitInquiry)
	e.POST("/contact", h.SubmitContact)
	e.GET("/api/admin/inquiries", h.ListInquiries)
	return e
}

func TestInquiryFormEndToEnd(t *testing.T) {
	svc, collections := newTestService(&fakeMailer{})
	e := setupRoutes(svc)

	payload := `{
		"studentName": "Aarav Mehta",
		"parentName": "Rohit Mehta",
		"email": "rohit@example.com",
		"phone": "9876543210",
		"classApplying": "Class 5",
		"message": "Seeking mid-year admission."
	}`
	req := httptest.NewRequest(http.MethodPost, "/admissions/inquiry", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	ctx := context.Background()
	inquiries, err := collections.Inquiries.All(ctx, nil)
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Equal(t, "pending", inquiries[0].Status)
	assert.Equal(t, "Class 5", inquiries[0].ClassApplying)

	contacts, err := collections.Contacts.All(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestInquiryFormMissingField(t *testing.T) {
	svc, _ := newTestService(&fakeMailer{})
	e := setupRoutes(svc)

	payload := `{"studentName": "Aarav Mehta"}`
	req := httptest.NewRequest(http.MethodPost, "/admissions/inquiry", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactFormEndToEnd(t *testing.T) {
	mailer := &fakeMailer{}
	svc, collections := newTestService(mailer)
	e := setupRoutes(svc)

	payload := `{
		"name": "Sunita Rao",
		"email": "sunita@example.com",
		"subject": "Bus route query",
		"message": "Is there a bus from Sector 12?"
	}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	contacts, err := collections.Contacts.All(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "new", contacts[0].Status)
	assert.Len(t, mailer.sent, 1)
}
