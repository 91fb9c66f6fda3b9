package inquiry

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdmissionInquiry is written by the public admissions form. Append-only:
// inquiries are never edited through the site, only read by admins.
type AdmissionInquiry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName   string             `bson:"studentName" json:"studentName"`
	ParentName    string             `bson:"parentName" json:"parentName"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	ClassApplying string             `bson:"classApplying" json:"classApplying"`
	Message       string             `bson:"message" json:"message"`
	SubmittedAt   string             `bson:"submittedAt" json:"submittedAt"`
	Status        string             `bson:"status" json:"status"`
}

// ContactSubmission is written by the public contact form.
type ContactSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	Status    string             `bson:"status" json:"status"`
}

type InquiryRequest struct {
	StudentName   string `json:"studentName"`
	ParentName    string `json:"parentName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ClassApplying string `json:"classApplying"`
	Message       string `json:"message"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
