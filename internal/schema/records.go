package schema

import "time"

// Kind names one of the record shapes the API knows about.
type Kind string

const (
	KindAppointment    Kind = "appointment"
	KindContactMessage Kind = "contactmessage"
	KindDoctorProfile  Kind = "doctorprofile"
	KindTestimonial    Kind = "testimonial"
)

// StatusPending is the only status an appointment request is ever stored with.
const StatusPending = "pending"

// Record is any validated value produced by Validate.
type Record interface {
	Kind() Kind
}

// Document is a record that is persisted. Collection is the target collection name.
type Document interface {
	Record
	Collection() string
}

// Appointment is a patient's request for a visit.
// PreferredDate is kept as the text the patient typed; it is not parsed.
type Appointment struct {
	FullName      string  `json:"full_name" bson:"full_name" validate:"min=2"`
	Email         string  `json:"email" bson:"email" validate:"email"`
	Phone         string  `json:"phone" bson:"phone" validate:"min=7"`
	PreferredDate string  `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string  `json:"preferred_time" bson:"preferred_time"`
	Service       string  `json:"service" bson:"service"`
	Notes         *string `json:"notes" bson:"notes"`
	Status        string  `json:"status" bson:"status"`
}

func (Appointment) Kind() Kind         { return KindAppointment }
func (Appointment) Collection() string { return string(KindAppointment) }

// ContactMessage is a message left through the site's contact form.
type ContactMessage struct {
	Name    string `json:"name" bson:"name" validate:"min=2"`
	Email   string `json:"email" bson:"email" validate:"email"`
	Subject string `json:"subject" bson:"subject" validate:"min=2"`
	Message string `json:"message" bson:"message" validate:"min=5"`
}

func (ContactMessage) Kind() Kind         { return KindContactMessage }
func (ContactMessage) Collection() string { return string(KindContactMessage) }

// DoctorProfile is the public profile shown on the site. It is never stored.
type DoctorProfile struct {
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Location        string            `json:"location"`
	Bio             string            `json:"bio"`
	Specialties     []string          `json:"specialties"`
	YearsExperience int               `json:"years_experience"`
	Education       []string          `json:"education"`
	Certifications  []string          `json:"certifications"`
	Languages       []string          `json:"languages"`
	PhotoURL        *string           `json:"photo_url"`
	Socials         map[string]string `json:"socials"`
}

func (DoctorProfile) Kind() Kind { return KindDoctorProfile }

// Testimonial is a short patient review.
type Testimonial struct {
	Name   string     `json:"name"`
	Text   string     `json:"text"`
	Rating int        `json:"rating" validate:"gte=1,lte=5"`
	Date   *time.Time `json:"date"`
}

func (Testimonial) Kind() Kind { return KindTestimonial }
