package content

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"SchoolSite/internal/assets"
	"SchoolSite/internal/store"
)

// Asset store folders, one per content type.
const (
	eventsFolder      = "school-events"
	galleryFolder     = "school-gallery"
	disclosuresFolder = "school-disclosures"
	facultyFolder     = "faculty"
)

// FileUpload carries an uploaded file from the HTTP layer to the asset store.
type FileUpload struct {
	Reader   io.Reader
	Filename string
}

// Collections groups the document collections the content managers write to.
type Collections struct {
	Events      store.Collection[Event]
	Gallery     store.Collection[GalleryImage]
	Disclosures store.Collection[Disclosure]
	Faculty     store.Collection[FacultyMember]
	Notices     store.Collection[Notice]
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Events:      store.NewMongoCollection[Event](db, "events"),
		Gallery:     store.NewMongoCollection[GalleryImage](db, "gallery"),
		Disclosures: store.NewMongoCollection[Disclosure](db, "disclosures"),
		Faculty:     store.NewMongoCollection[FacultyMember](db, "faculty"),
		Notices:     store.NewMongoCollection[Notice](db, "admissionNotices"),
	}
}

// Service implements the content managers behind the admin surface: create
// with optional or mandatory upload, list, delete, faculty update-in-place,
// and the single-live-notice ticker write.
type Service struct {
	collections *Collections
	uploads     assets.Uploader
}

func NewService(collections *Collections, uploads assets.Uploader) *Service {
	return &Service{collections: collections, uploads: uploads}
}

func (s *Service) uploadAsset(ctx context.Context, file *FileUpload, folder string) (string, error) {
	url, err := s.uploads.Upload(ctx, file.Reader, file.Filename, folder)
	if err != nil {
		return "", uploadError(err)
	}
	return url, nil
}

// Events

type CreateEventRequest struct {
	Title       string
	Description string
	Date        string
	Image       *FileUpload
}

func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, requiredField("title")
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, requiredField("date")
	}

	imageURL := ""
	if req.Image != nil {
		var err error
		imageURL, err = s.uploadAsset(ctx, req.Image, eventsFolder)
		if err != nil {
			return nil, err
		}
	}

	event := &Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    imageURL,
		CreatedAt:   nowTimestamp(),
	}
	id, err := s.collections.Events.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	return event, nil
}

func (s *Service) ListEvents(ctx context.Context) ([]*Event, error) {
	return s.collections.Events.All(ctx, &store.Sort{Field: "date", Desc: true})
}

// LatestEvents returns the most recent events by date for the home page.
func (s *Service) LatestEvents(ctx context.Context, limit int) ([]*Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return s.collections.Events.DeleteByID(ctx, id)
}

// Gallery

type CreateGalleryImageRequest struct {
	Title    string
	Category string
	Image    *FileUpload
}

func (s *Service) CreateGalleryImage(ctx context.Context, req CreateGalleryImageRequest) (*GalleryImage, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, requiredField("title")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, requiredField("category")
	}
	if req.Image == nil {
		return nil, requiredField("image")
	}

	imageURL, err := s.uploadAsset(ctx, req.Image, galleryFolder)
	if err != nil {
		return nil, err
	}

	image := &GalleryImage{
		Title:      req.Title,
		Category:   req.Category,
		ImageURL:   imageURL,
		UploadedAt: nowTimestamp(),
	}
	id, err := s.collections.Gallery.Insert(ctx, image)
	if err != nil {
		return nil, err
	}
	image.ID = id
	return image, nil
}

func (s *Service) ListGallery(ctx context.Context) ([]*GalleryImage, error) {
	return s.collections.Gallery.All(ctx, &store.Sort{Field: "uploadedAt", Desc: true})
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id primitive.ObjectID) error {
	return s.collections.Gallery.DeleteByID(ctx, id)
}

// Disclosures

type CreateDisclosureRequest struct {
	Title    string
	Category string
	File     *FileUpload
}

func (s *Service) CreateDisclosure(ctx context.Context, req CreateDisclosureRequest) (*Disclosure, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, requiredField("title")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, requiredField("category")
	}
	if req.File == nil {
		return nil, requiredField("file")
	}

	fileURL, err := s.uploadAsset(ctx, req.File, disclosuresFolder)
	if err != nil {
		return nil, err
	}

	disclosure := &Disclosure{
		Title:      req.Title,
		FileName:   req.File.Filename,
		FileURL:    fileURL,
		Category:   req.Category,
		UploadDate: nowDate(),
	}
	id, err := s.collections.Disclosures.Insert(ctx, disclosure)
	if err != nil {
		return nil, err
	}
	disclosure.ID = id
	return disclosure, nil
}

func (s *Service) ListDisclosures(ctx context.Context) ([]*Disclosure, error) {
	return s.collections.Disclosures.All(ctx, &store.Sort{Field: "uploadDate", Desc: true})
}

func (s *Service) DeleteDisclosure(ctx context.Context, id primitive.ObjectID) error {
	return s.collections.Disclosures.DeleteByID(ctx, id)
}

// Faculty

type FacultyRequest struct {
	Name          string
	Designation   string
	Department    string
	Qualification string
	Experience    string
	Image         *FileUpload
}

func (s *Service) CreateFaculty(ctx context.Context, req FacultyRequest) (*FacultyMember, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, requiredField("name")
	}
	if strings.TrimSpace(req.Designation) == "" {
		return nil, requiredField("designation")
	}

	imageURL := FacultyPlaceholderImage
	if req.Image != nil {
		var err error
		imageURL, err = s.uploadAsset(ctx, req.Image, facultyFolder)
		if err != nil {
			return nil, err
		}
	}

	member := &FacultyMember{
		Name:          req.Name,
		Designation:   req.Designation,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		ImageURL:      imageURL,
		CreatedAt:     nowTimestamp(),
	}
	id, err := s.collections.Faculty.Insert(ctx, member)
	if err != nil {
		return nil, err
	}
	member.ID = id
	return member, nil
}

// UpdateFaculty overwrites the supplied fields only. When no new photo is
// uploaded, the imageUrl key is omitted so the prior value survives the merge.
func (s *Service) UpdateFaculty(ctx context.Context, id primitive.ObjectID, req FacultyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return requiredField("name")
	}
	if strings.TrimSpace(req.Designation) == "" {
		return requiredField("designation")
	}

	fields := bson.M{
		"name":          req.Name,
		"designation":   req.Designation,
		"department":    req.Department,
		"qualification": req.Qualification,
		"experience":    req.Experience,
		"updatedAt":     nowTimestamp(),
	}
	if req.Image != nil {
		imageURL, err := s.uploadAsset(ctx, req.Image, facultyFolder)
		if err != nil {
			return err
		}
		fields["imageUrl"] = imageURL
	}

	return s.collections.Faculty.UpdateByID(ctx, id, fields)
}

func (s *Service) ListFaculty(ctx context.Context) ([]*FacultyMember, error) {
	return s.collections.Faculty.All(ctx, &store.Sort{Field: "name", Desc: false})
}

func (s *Service) DeleteFaculty(ctx context.Context, id primitive.ObjectID) error {
	return s.collections.Faculty.DeleteByID(ctx, id)
}

// Ticker

// PublishNotice replaces the live admission notice. The write is an upsert
// against a fixed key, so there is never a window with zero or two notices.
func (s *Service) PublishNotice(ctx context.Context, text string) (*Notice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, requiredField("notice text")
	}
	if len(text) > MaxNoticeLength {
		return nil, fmt.Errorf("%w: notice text exceeds %d characters", ErrValidation, MaxNoticeLength)
	}

	notice := &Notice{
		Key:       noticeKey,
		Text:      text,
		Timestamp: nowTimestamp(),
	}
	if err := s.collections.Notices.ReplaceUpsert(ctx, bson.M{"key": noticeKey}, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// CurrentNotice returns the live notice, or nil when none is published. Should
// duplicates ever exist, only the most recent by timestamp is treated as live.
func (s *Service) CurrentNotice(ctx context.Context) (*Notice, error) {
	return s.collections.Notices.First(ctx, store.Sort{Field: "timestamp", Desc: true})
}

func (s *Service) RemoveNotice(ctx context.Context) error {
	notice, err := s.CurrentNotice(ctx)
	if err != nil {
		return err
	}
	if notice == nil {
		return store.ErrNotFound
	}
	return s.collections.Notices.DeleteByID(ctx, notice.ID)
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func nowDate() string {
	return time.Now().UTC().Format(time.DateOnly)
}
