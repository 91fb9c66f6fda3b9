package content_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"SchoolSite/internal/content"
	"SchoolSite/internal/store"
)

type fakeUploader struct {
	url     string
	err     error
	uploads int
	folder  string
	content string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	f.uploads++
	f.folder = folder
	data, _ := io.ReadAll(file)
	f.content = string(data)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newTestService(uploader *fakeUploader) (*content.Service, *content.Collections) {
	collections := &content.Collections{
		Events:      store.NewMemoryCollection[content.Event](),
		Gallery:     store.NewMemoryCollection[content.GalleryImage](),
		Disclosures: store.NewMemoryCollection[content.Disclosure](),
		Faculty:     store.NewMemoryCollection[content.FacultyMember](),
		Notices:     store.NewMemoryCollection[content.Notice](),
	}
	return content.NewService(collections, uploader), collections
}

func upload(data string) *content.FileUpload {
	return &content.FileUpload{Reader: strings.NewReader(data), Filename: "file.jpg"}
}

func TestCreateEventAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{url: "https://cdn.example/event.jpg"})

	created, err := svc.CreateEvent(ctx, content.CreateEventRequest{
		Title:       "Annual Day",
		Description: "Cultural performances",
		Date:        "2026-03-10",
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Empty(t, created.ImageURL)
	assert.NotEmpty(t, created.CreatedAt)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
	assert.Equal(t, "Annual Day", events[0].Title)
	assert.Equal(t, "Cultural performances", events[0].Description)
	assert.Equal(t, "2026-03-10", events[0].Date)
}

func TestCreateEventUploadsImage(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{url: "https://cdn.example/event.jpg"}
	svc, _ := newTestService(uploader)

	created, err := svc.CreateEvent(ctx, content.CreateEventRequest{
		Title: "Sports Day",
		Date:  "2026-01-15",
		Image: upload("image-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/event.jpg", created.ImageURL)
	assert.Equal(t, "school-events", uploader.folder)
}

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{url: "https://cdn.example/event.jpg"}
	svc, collections := newTestService(uploader)

	_, err := svc.CreateEvent(ctx, content.CreateEventRequest{Date: "2026-01-15", Image: upload("x")})
	assert.ErrorIs(t, err, content.ErrValidation)
	assert.Zero(t, uploader.uploads, "validation must run before any upload")

	_, err = svc.CreateEvent(ctx, content.CreateEventRequest{Title: "No Date"})
	assert.ErrorIs(t, err, content.ErrValidation)

	events, err := collections.Events.All(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateGalleryImageRequiresFile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{url: "https://cdn.example/img.jpg"})

	_, err := svc.CreateGalleryImage(ctx, content.CreateGalleryImageRequest{Title: "Sports Day", Category: "Sports"})
	assert.ErrorIs(t, err, content.ErrValidation)
}

func TestUploadFailureLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{err: errors.New("preset rejected")}
	svc, collections := newTestService(uploader)

	_, err := svc.CreateGalleryImage(ctx, content.CreateGalleryImageRequest{
		Title:    "Sports Day",
		Category: "Sports",
		Image:    upload("img"),
	})
	assert.ErrorIs(t, err, content.ErrUploadFailed)

	images, err := collections.Gallery.All(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{})

	created, err := svc.CreateEvent(ctx, content.CreateEventRequest{Title: "PTM", Date: "2026-01-25"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	err = svc.DeleteEvent(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateDisclosure(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{url: "https://cdn.example/fees.pdf"}
	svc, _ := newTestService(uploader)

	created, err := svc.CreateDisclosure(ctx, content.CreateDisclosureRequest{
		Title:    "Fee Structure Document",
		Category: "Financial",
		File:     &content.FileUpload{Reader: strings.NewReader("pdf"), Filename: "fees.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fees.pdf", created.FileName)
	assert.Equal(t, "https://cdn.example/fees.pdf", created.FileURL)
	assert.Equal(t, "school-disclosures", uploader.folder)
	assert.NotEmpty(t, created.UploadDate)
}

func TestCreateFacultyDefaultsPlaceholderImage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{})

	created, err := svc.CreateFaculty(ctx, content.FacultyRequest{
		Name:        "Mrs. Priya Sharma",
		Designation: "Vice Principal",
		Department:  "Science",
	})
	require.NoError(t, err)
	assert.Equal(t, content.FacultyPlaceholderImage, created.ImageURL)
}

func TestUpdateFacultyPreservesImage(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{url: "https://cdn.example/original.jpg"}
	svc, _ := newTestService(uploader)

	created, err := svc.CreateFaculty(ctx, content.FacultyRequest{
		Name:        "Mr. Amit Singh",
		Designation: "HOD Science",
		Department:  "Science",
		Image:       upload("photo"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/original.jpg", created.ImageURL)

	// No new photo: imageUrl must survive the merge.
	err = svc.UpdateFaculty(ctx, created.ID, content.FacultyRequest{
		Name:        "Dr. Amit Singh",
		Designation: "HOD Science",
		Department:  "Science",
	})
	require.NoError(t, err)

	members, err := svc.ListFaculty(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Dr. Amit Singh", members[0].Name)
	assert.Equal(t, "https://cdn.example/original.jpg", members[0].ImageURL)
	assert.NotEmpty(t, members[0].UpdatedAt)

	// New photo replaces the URL.
	uploader.url = "https://cdn.example/replacement.jpg"
	err = svc.UpdateFaculty(ctx, created.ID, content.FacultyRequest{
		Name:        "Dr. Amit Singh",
		Designation: "HOD Science",
		Department:  "Science",
		Image:       upload("new-photo"),
	})
	require.NoError(t, err)

	members, err = svc.ListFaculty(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "https://cdn.example/replacement.jpg", members[0].ImageURL)
}

func TestUpdateFacultyNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{})

	err := svc.UpdateFaculty(ctx, primitive.NewObjectID(), content.FacultyRequest{
		Name:        "Ghost",
		Designation: "Teacher",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPublishNoticeKeepsSingleRecord(t *testing.T) {
	ctx := context.Background()
	svc, collections := newTestService(&fakeUploader{})

	_, err := svc.PublishNotice(ctx, "Admissions open for 2026-27!")
	require.NoError(t, err)
	_, err = svc.PublishNotice(ctx, "Limited seats available.")
	require.NoError(t, err)
	_, err = svc.PublishNotice(ctx, "Apply now!")
	require.NoError(t, err)

	notices, err := collections.Notices.All(ctx, nil)
	require.NoError(t, err)
	require.Len(t, notices, 1, "publishing must never leave more than one live notice")

	current, err := svc.CurrentNotice(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Apply now!", current.Text)
}

func TestPublishNoticeValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{})

	_, err := svc.PublishNotice(ctx, "   ")
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = svc.PublishNotice(ctx, strings.Repeat("x", content.MaxNoticeLength+1))
	assert.ErrorIs(t, err, content.ErrValidation)
}

func TestRemoveNotice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeUploader{})

	_, err := svc.PublishNotice(ctx, "Admissions open!")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveNotice(ctx))

	current, err := svc.CurrentNotice(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	err = svc.RemoveNotice(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
