package content

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"SchoolSite/internal/store"
)

// Handler exposes the admin content managers over HTTP. Creates accept
// multipart forms so record fields and the binary asset travel together.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c echo.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

// fileUpload pulls an optional file out of the multipart form. A missing
// field is not an error here; required-file checks live in the service.
func fileUpload(c echo.Context, field string) (*FileUpload, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &FileUpload{Reader: src, Filename: fh.Filename}, src, nil
}

func writeError(c echo.Context, err error, saveMsg string) error {
	switch {
	case errors.Is(err, ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
	case errors.Is(err, ErrUploadFailed):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": saveMsg})
	}
}

// Events

func (h *Handler) CreateEvent(c echo.Context) error {
	image, closer, err := fileUpload(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image file"})
	}
	if closer != nil {
		defer closer.Close()
	}

	event, err := h.service.CreateEvent(c.Request().Context(), CreateEventRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Date:        c.FormValue("date"),
		Image:       image,
	})
	if err != nil {
		return writeError(c, err, "Failed to save event")
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) ListEvents(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch events"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"events": events})
}

func (h *Handler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	if err := h.service.DeleteEvent(c.Request().Context(), id); err != nil {
		return writeError(c, err, "Failed to delete event")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// Gallery

func (h *Handler) CreateGalleryImage(c echo.Context) error {
	image, closer, err := fileUpload(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image file"})
	}
	if closer != nil {
		defer closer.Close()
	}

	created, err := h.service.CreateGalleryImage(c.Request().Context(), CreateGalleryImageRequest{
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
		Image:    image,
	})
	if err != nil {
		return writeError(c, err, "Failed to save gallery image")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListGallery(c echo.Context) error {
	images, err := h.service.ListGallery(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch gallery"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"images": images})
}

func (h *Handler) DeleteGalleryImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	if err := h.service.DeleteGalleryImage(c.Request().Context(), id); err != nil {
		return writeError(c, err, "Failed to delete gallery image")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

// Disclosures

func (h *Handler) CreateDisclosure(c echo.Context) error {
	file, closer, err := fileUpload(c, "file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid file"})
	}
	if closer != nil {
		defer closer.Close()
	}

	disclosure, err := h.service.CreateDisclosure(c.Request().Context(), CreateDisclosureRequest{
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
		File:     file,
	})
	if err != nil {
		return writeError(c, err, "Failed to save disclosure")
	}
	return c.JSON(http.StatusCreated, disclosure)
}

func (h *Handler) ListDisclosures(c echo.Context) error {
	disclosures, err := h.service.ListDisclosures(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch disclosures"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"disclosures": disclosures})
}

func (h *Handler) DeleteDisclosure(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	if err := h.service.DeleteDisclosure(c.Request().Context(), id); err != nil {
		return writeError(c, err, "Failed to delete disclosure")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Disclosure deleted successfully"})
}

// Faculty

func facultyRequest(c echo.Context, image *FileUpload) FacultyRequest {
	return FacultyRequest{
		Name:          c.FormValue("name"),
		Designation:   c.FormValue("designation"),
		Department:    c.FormValue("department"),
		Qualification: c.FormValue("qualification"),
		Experience:    c.FormValue("experience"),
		Image:         image,
	}
}

func (h *Handler) CreateFaculty(c echo.Context) error {
	image, closer, err := fileUpload(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image file"})
	}
	if closer != nil {
		defer closer.Close()
	}

	member, err := h.service.CreateFaculty(c.Request().Context(), facultyRequest(c, image))
	if err != nil {
		return writeError(c, err, "Failed to save faculty member")
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateFaculty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}

	image, closer, err := fileUpload(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image file"})
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := h.service.UpdateFaculty(c.Request().Context(), id, facultyRequest(c, image)); err != nil {
		return writeError(c, err, "Failed to update faculty member")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Faculty member updated successfully"})
}

func (h *Handler) ListFaculty(c echo.Context) error {
	members, err := h.service.ListFaculty(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch faculty"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"faculty": members})
}

func (h *Handler) DeleteFaculty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
	}
	if err := h.service.DeleteFaculty(c.Request().Context(), id); err != nil {
		return writeError(c, err, "Failed to delete faculty member")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Faculty member deleted successfully"})
}

// Ticker

type publishNoticeRequest struct {
	Text string `json:"text"`
}

func (h *Handler) GetNotice(c echo.Context) error {
	notice, err := h.service.CurrentNotice(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notice"})
	}
	if notice == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No notice published"})
	}
	return c.JSON(http.StatusOK, notice)
}

func (h *Handler) PublishNotice(c echo.Context) error {
	var req publishNoticeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	notice, err := h.service.PublishNotice(c.Request().Context(), req.Text)
	if err != nil {
		return writeError(c, err, "Failed to publish notice")
	}
	return c.JSON(http.StatusCreated, notice)
}

func (h *Handler) RemoveNotice(c echo.Context) error {
	if err := h.service.RemoveNotice(c.Request().Context()); err != nil {
		return writeError(c, err, "Failed to remove notice")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Admission notice removed successfully"})
}
