package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SchoolSite/internal/content"
)

func TestFilterEventsByWindow(t *testing.T) {
	today := "2026-02-01"
	events := []*content.Event{
		{Title: "Past PTM", Date: "2026-01-25"},
		{Title: "Today Assembly", Date: "2026-02-01"},
		{Title: "Future Annual Day", Date: "2026-03-10"},
	}

	upcoming := content.FilterEventsByWindow(events, "upcoming", today)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "Today Assembly", upcoming[0].Title)

	past := content.FilterEventsByWindow(events, "past", today)
	assert.Len(t, past, 1)
	assert.Equal(t, "Past PTM", past[0].Title)

	all := content.FilterEventsByWindow(events, "all", today)
	assert.Len(t, all, 3)
}

func TestFilterGalleryByCategory(t *testing.T) {
	images := []*content.GalleryImage{
		{Title: "Sports Day", Category: "Sports"},
		{Title: "Science Fair", Category: "Academic"},
		{Title: "Cricket Match", Category: "Sports"},
	}

	sports := content.FilterGalleryByCategory(images, "Sports")
	assert.Len(t, sports, 2)
	for _, img := range sports {
		assert.Equal(t, "Sports", img.Category)
	}

	assert.Len(t, content.FilterGalleryByCategory(images, "all"), 3)
	assert.Len(t, content.FilterGalleryByCategory(images, "All"), 3)
	assert.Len(t, content.FilterGalleryByCategory(images, ""), 3)
	assert.Empty(t, content.FilterGalleryByCategory(images, "Cultural"))
}

func TestFilterFacultyByDepartment(t *testing.T) {
	members := []*content.FacultyMember{
		{Name: "A", Department: "Science"},
		{Name: "B", Department: "Mathematics"},
	}

	science := content.FilterFacultyByDepartment(members, "Science")
	assert.Len(t, science, 1)
	assert.Equal(t, "A", science[0].Name)

	assert.Len(t, content.FilterFacultyByDepartment(members, "All"), 2)
}

func TestFilterDisclosuresByCategory(t *testing.T) {
	disclosures := []*content.Disclosure{
		{Title: "Fire Safety", Category: "Safety & Security"},
		{Title: "Fees", Category: "Financial"},
	}

	safety := content.FilterDisclosuresByCategory(disclosures, "Safety & Security")
	assert.Len(t, safety, 1)
	assert.Equal(t, "Fire Safety", safety[0].Title)

	assert.Len(t, content.FilterDisclosuresByCategory(disclosures, "All"), 2)
}
