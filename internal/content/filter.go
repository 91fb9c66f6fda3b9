package content

import "strings"

// Listing filters are pure projections over an already-fetched collection.

// FilterEventsByWindow splits events into upcoming and past relative to today,
// an ISO date string. Any other window value returns the full set.
func FilterEventsByWindow(events []*Event, window, today string) []*Event {
	switch window {
	case "upcoming":
		return filterEvents(events, func(e *Event) bool { return e.Date >= today })
	case "past":
		return filterEvents(events, func(e *Event) bool { return e.Date < today })
	default:
		return events
	}
}

func filterEvents(events []*Event, keep func(*Event) bool) []*Event {
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterGalleryByCategory returns the images whose category equals the
// selection; "all" (any case) or an empty selection returns everything.
func FilterGalleryByCategory(images []*GalleryImage, category string) []*GalleryImage {
	return filterByValue(images, category, func(img *GalleryImage) string { return img.Category })
}

func FilterFacultyByDepartment(members []*FacultyMember, department string) []*FacultyMember {
	return filterByValue(members, department, func(m *FacultyMember) string { return m.Department })
}

func FilterDisclosuresByCategory(disclosures []*Disclosure, category string) []*Disclosure {
	return filterByValue(disclosures, category, func(d *Disclosure) string { return d.Category })
}

func filterByValue[T any](items []*T, value string, field func(*T) string) []*T {
	if value == "" || strings.EqualFold(value, "all") {
		return items
	}
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if field(item) == value {
			out = append(out, item)
		}
	}
	return out
}
