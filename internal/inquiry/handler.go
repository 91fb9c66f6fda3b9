package inquiry

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubmitInquiry(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	_, err := h.service.SubmitInquiry(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit inquiry"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Inquiry submitted successfully"})
}

func (h *Handler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	_, err := h.service.SubmitContact(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit message"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Message submitted successfully"})
}

func (h *Handler) ListInquiries(c echo.Context) error {
	inquiries, err := h.service.ListInquiries(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch inquiries"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"inquiries": inquiries})
}

func (h *Handler) ListContacts(c echo.Context) error {
	contacts, err := h.service.ListContacts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch contact submissions"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"contacts": contacts})
}
