package content

import "go.mongodb.org/mongo-driver/bson/primitive"

// Date and timestamp fields are ISO-8601 strings, matching what the public
// pages compare and sort on.

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   string             `bson:"createdAt" json:"createdAt"`
}

type GalleryImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Category   string             `bson:"category" json:"category"`
	ImageURL   string             `bson:"imageUrl" json:"imageUrl"`
	UploadedAt string             `bson:"uploadedAt" json:"uploadedAt"`
}

type Disclosure struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	FileName   string             `bson:"fileName" json:"fileName"`
	FileURL    string             `bson:"fileUrl" json:"fileUrl"`
	Category   string             `bson:"category" json:"category"`
	UploadDate string             `bson:"uploadDate" json:"uploadDate"`
}

type FacultyMember struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Designation   string             `bson:"designation" json:"designation"`
	Department    string             `bson:"department" json:"department"`
	Qualification string             `bson:"qualification" json:"qualification"`
	Experience    string             `bson:"experience" json:"experience"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt     string             `bson:"createdAt" json:"createdAt"`
	UpdatedAt     string             `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Notice is the admission ticker shown on the public home page. There is at
// most one live notice; writes replace the record stored under noticeKey.
type Notice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"-"`
	Text      string             `bson:"text" json:"text"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
}

const noticeKey = "current"

// MaxNoticeLength caps the ticker text shown on the homepage banner.
const MaxNoticeLength = 200

// FacultyPlaceholderImage is used when a faculty member is created without a photo.
const FacultyPlaceholderImage = "https://via.placeholder.com/200x200?text=Faculty"

// Option lists offered by the admin forms. The backend stores whatever string
// it is given; membership is not enforced server-side.
var (
	GalleryCategories = []string{"Sports", "Academic", "Cultural", "Infrastructure", "Celebration", "Activities"}

	DisclosureCategories = []string{"General", "Academic", "Infrastructure", "Faculty", "Financial", "Affiliation", "Safety & Security"}

	Departments = []string{"Science", "Mathematics", "English", "Social Studies", "Hindi", "Computer Science", "Physical Education", "Arts", "Administration"}
)
