package inquiry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"SchoolSite/internal/store"
)

// ErrValidation covers missing required fields, caught before any network call.
var ErrValidation = errors.New("missing required field")

// Mailer sends the contact confirmation email. Satisfied by config.EmailService.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type Collections struct {
	Inquiries store.Collection[AdmissionInquiry]
	Contacts  store.Collection[ContactSubmission]
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Inquiries: store.NewMongoCollection[AdmissionInquiry](db, "admissionInquiries"),
		Contacts:  store.NewMongoCollection[ContactSubmission](db, "contactSubmissions"),
	}
}

type Service struct {
	collections *Collections
	mailer      Mailer
}

func NewService(collections *Collections, mailer Mailer) *Service {
	return &Service{collections: collections, mailer: mailer}
}

func requiredField(name string) error {
	return fmt.Errorf("%w: %s", ErrValidation, name)
}

func (s *Service) SubmitInquiry(ctx context.Context, req InquiryRequest) (*AdmissionInquiry, error) {
	for field, value := range map[string]string{
		"studentName":   req.StudentName,
		"parentName":    req.ParentName,
		"email":         req.Email,
		"phone":         req.Phone,
		"classApplying": req.ClassApplying,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, requiredField(field)
		}
	}

	inquiry := &AdmissionInquiry{
		StudentName:   req.StudentName,
		ParentName:    req.ParentName,
		Email:         req.Email,
		Phone:         req.Phone,
		ClassApplying: req.ClassApplying,
		Message:       req.Message,
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
		Status:        "pending",
	}
	id, err := s.collections.Inquiries.Insert(ctx, inquiry)
	if err != nil {
		return nil, err
	}
	inquiry.ID = id
	return inquiry, nil
}

// SubmitContact stores the submission, then sends a confirmation email.
// The email is best-effort: a failure is logged and never fails the submission.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (*ContactSubmission, error) {
	for field, value := range map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, requiredField(field)
		}
	}

	submission := &ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    "new",
	}
	id, err := s.collections.Contacts.Insert(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = id

	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for contacting us. We have received your enquiry regarding \"%s\" and will get back to you soon.</p>",
		req.Name, req.Subject,
	)
	if err := s.mailer.SendEmail(req.Email, "We received your enquiry", body); err != nil {
		log.Println("Failed to send confirmation email:", err)
	}

	return submission, nil
}

func (s *Service) ListInquiries(ctx context.Context) ([]*AdmissionInquiry, error) {
	return s.collections.Inquiries.All(ctx, &store.Sort{Field: "submittedAt", Desc: true})
}

func (s *Service) ListContacts(ctx context.Context) ([]*ContactSubmission, error) {
	return s.collections.Contacts.All(ctx, &store.Sort{Field: "timestamp", Desc: true})
}
