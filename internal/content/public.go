package content

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Public listing endpoints. Each fetches the full collection and applies a
// pure filter projection; empty collections fall back to placeholder data.

var publicDepartments = []string{"All", "Science", "Mathematics", "English", "Social Studies", "Hindi", "Computer Science", "Physical Education", "Arts"}

const homeEventCount = 3

func (h *Handler) PublicEvents(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch events"})
	}
	if len(events) == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{"events": PlaceholderEvents})
	}
	today := time.Now().Format(time.DateOnly)
	filtered := FilterEventsByWindow(events, c.QueryParam("filter"), today)
	return c.JSON(http.StatusOK, map[string]interface{}{"events": filtered})
}

func (h *Handler) PublicGallery(c echo.Context) error {
	images, err := h.service.ListGallery(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch gallery"})
	}
	if len(images) == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"images":     PlaceholderGallery,
			"categories": galleryCategories(PlaceholderGallery),
		})
	}
	filtered := FilterGalleryByCategory(images, c.QueryParam("category"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"images":     filtered,
		"categories": galleryCategories(images),
	})
}

// galleryCategories derives the category chips from the fetched images.
func galleryCategories(images []*GalleryImage) []string {
	seen := make(map[string]bool)
	categories := []string{"all"}
	for _, img := range images {
		if img.Category == "" || seen[img.Category] {
			continue
		}
		seen[img.Category] = true
		categories = append(categories, img.Category)
	}
	return categories
}

func (h *Handler) PublicFaculty(c echo.Context) error {
	members, err := h.service.ListFaculty(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch faculty"})
	}
	if len(members) == 0 {
		members = PlaceholderFaculty
	}
	filtered := FilterFacultyByDepartment(members, c.QueryParam("department"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"faculty":     filtered,
		"departments": publicDepartments,
	})
}

func (h *Handler) PublicDisclosures(c echo.Context) error {
	disclosures, err := h.service.ListDisclosures(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch disclosures"})
	}
	if len(disclosures) == 0 {
		disclosures = PlaceholderDisclosures
	}
	filtered := FilterDisclosuresByCategory(disclosures, c.QueryParam("category"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"disclosures": filtered,
		"categories":  append([]string{"All"}, DisclosureCategories...),
	})
}

// PublicNotice returns the live ticker text; empty when nothing is published.
func (h *Handler) PublicNotice(c echo.Context) error {
	notice, err := h.service.CurrentNotice(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notice"})
	}
	text := ""
	if notice != nil {
		text = notice.Text
	}
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}

// PublicHome backs the home page: the admission ticker plus the latest events.
func (h *Handler) PublicHome(c echo.Context) error {
	ctx := c.Request().Context()

	notice, err := h.service.CurrentNotice(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch home content"})
	}
	text := ""
	if notice != nil {
		text = notice.Text
	}

	events, err := h.service.LatestEvents(ctx, homeEventCount)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch home content"})
	}
	if len(events) == 0 {
		events = PlaceholderEvents[:homeEventCount]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice": text,
		"events": events,
	})
}
