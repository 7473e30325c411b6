package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata, so one is shared.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON reads a single JSON object from body and validates it as kind.
// A body that is not a JSON object is reported as a BadFormat violation on "body".
func DecodeJSON(body io.Reader, kind Kind) (Record, error) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, ValidationErrors{{Field: "body", Kind: BadFormat, Rule: "json", Message: "JSON decode error: " + err.Error()}}
	}
	if raw == nil {
		return nil, ValidationErrors{{Field: "body", Kind: BadFormat, Rule: "object", Message: "Input should be a valid dictionary"}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ValidationErrors{{Field: "body", Kind: BadFormat, Rule: "json", Message: "JSON decode error: trailing data after object"}}
	}
	return Validate(raw, kind)
}

// Validate checks raw against the shape of kind and returns the typed record.
// On failure the error is a ValidationErrors listing every violation.
func Validate(raw map[string]any, kind Kind) (Record, error) {
	switch kind {
	case KindAppointment:
		a, err := ValidateAppointment(raw)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindContactMessage:
		m, err := ValidateContactMessage(raw)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindDoctorProfile:
		p, err := ValidateDoctorProfile(raw)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindTestimonial:
		t, err := ValidateTestimonial(raw)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("schema: unknown kind %q", kind)
}

// ValidateAppointment checks raw as an appointment request and fills its defaults.
func ValidateAppointment(raw map[string]any) (*Appointment, error) {
	r := newReader(raw)
	a := &Appointment{
		FullName:      r.str("full_name"),
		Email:         r.str("email"),
		Phone:         r.str("phone"),
		PreferredDate: r.str("preferred_date"),
		PreferredTime: r.str("preferred_time"),
		Service:       r.str("service"),
		Notes:         r.optStr("notes"),
		Status:        StatusPending,
	}
	if s := r.optStr("status"); s != nil {
		a.Status = *s
	}
	if err := r.finish(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ValidateContactMessage checks raw as a contact form message.
func ValidateContactMessage(raw map[string]any) (*ContactMessage, error) {
	r := newReader(raw)
	m := &ContactMessage{
		Name:    r.str("name"),
		Email:   r.str("email"),
		Subject: r.str("subject"),
		Message: r.str("message"),
	}
	if err := r.finish(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateDoctorProfile checks raw as a doctor profile and fills its defaults.
func ValidateDoctorProfile(raw map[string]any) (*DoctorProfile, error) {
	r := newReader(raw)
	p := &DoctorProfile{
		Name:            r.str("name"),
		Title:           r.str("title"),
		Location:        r.str("location"),
		Bio:             r.str("bio"),
		Specialties:     r.strList("specialties", true),
		YearsExperience: r.integer("years_experience"),
		Education:       r.strList("education", true),
		Certifications:  r.strList("certifications", false),
		Languages:       r.strList("languages", false),
		PhotoURL:        r.optStr("photo_url"),
		Socials:         r.strMap("socials"),
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{"English"}
	}
	if err := r.finish(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateTestimonial checks raw as a patient testimonial.
func ValidateTestimonial(raw map[string]any) (*Testimonial, error) {
	r := newReader(raw)
	t := &Testimonial{
		Name:   r.str("name"),
		Text:   r.str("text"),
		Rating: r.integer("rating"),
		Date:   r.timestamp("date"),
	}
	if err := r.finish(t); err != nil {
		return nil, err
	}
	return t, nil
}

// reader pulls typed values out of a decoded JSON object, collecting
// presence and type violations as it goes.
type reader struct {
	raw   map[string]any
	errs  ValidationErrors
	order map[string]int
	bad   map[string]bool
}

func newReader(raw map[string]any) *reader {
	return &reader{raw: raw, order: map[string]int{}, bad: map[string]bool{}}
}

func (r *reader) fail(field string, kind ErrorKind, rule, msg string) {
	r.errs = append(r.errs, ValidationError{Field: field, Kind: kind, Rule: rule, Message: msg})
	r.bad[field] = true
}

// lookup returns the value for field. Absent or null optional fields report ok=false
// without a violation.
func (r *reader) lookup(field string, required bool, rule, typeMsg string) (any, bool) {
	if _, seen := r.order[field]; !seen {
		r.order[field] = len(r.order)
	}
	v, present := r.raw[field]
	if !present {
		if required {
			r.fail(field, MissingField, "required", "Field required")
		}
		return nil, false
	}
	if v == nil {
		if required {
			r.fail(field, BadFormat, rule, typeMsg)
		}
		return nil, false
	}
	return v, true
}

func (r *reader) str(field string) string {
	if s := r.stringValue(field, true); s != nil {
		return *s
	}
	return ""
}

func (r *reader) optStr(field string) *string {
	return r.stringValue(field, false)
}

func (r *reader) stringValue(field string, required bool) *string {
	const msg = "Input should be a valid string"
	v, ok := r.lookup(field, required, "string", msg)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, BadFormat, "string", msg)
		return nil
	}
	return &s
}

func (r *reader) integer(field string) int {
	const msg = "Input should be a valid integer"
	v, ok := r.lookup(field, true, "integer", msg)
	if !ok {
		return 0
	}
	var f float64
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		parsed, err := n.Float64()
		if err != nil {
			r.fail(field, BadFormat, "integer", msg)
			return 0
		}
		f = parsed
	case float64:
		f = n
	case int:
		return n
	case int64:
		return int(n)
	default:
		r.fail(field, BadFormat, "integer", msg)
		return 0
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		r.fail(field, BadFormat, "integer", "Input should be a valid integer, got a number with a fractional part")
		return 0
	}
	return int(f)
}

func (r *reader) strList(field string, required bool) []string {
	const msg = "Input should be a valid list of strings"
	v, ok := r.lookup(field, required, "list[str]", msg)
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return append([]string{}, items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				r.fail(field, BadFormat, "list[str]", msg)
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	r.fail(field, BadFormat, "list[str]", msg)
	return nil
}

func (r *reader) strMap(field string) map[string]string {
	const msg = "Input should be a valid dictionary of strings"
	v, ok := r.lookup(field, false, "dict", msg)
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, it := range m {
			s, ok := it.(string)
			if !ok {
				r.fail(field, BadFormat, "dict", msg)
				return nil
			}
			out[k] = s
		}
		return out
	}
	r.fail(field, BadFormat, "dict", msg)
	return nil
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (r *reader) timestamp(field string) *time.Time {
	const msg = "Input should be a valid datetime"
	v, ok := r.lookup(field, false, "datetime", msg)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case time.Time:
		return &t
	case string:
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return &parsed
			}
		}
	}
	r.fail(field, BadFormat, "datetime", msg)
	return nil
}

// finish runs the struct constraints and merges them with the violations
// collected while reading. Fields that already failed are not reported twice.
func (r *reader) finish(rec any) error {
	if err := validate.Struct(rec); err != nil {
		var fes validator.ValidationErrors
		if !errors.As(err, &fes) {
			return fmt.Errorf("schema: %w", err)
		}
		for _, fe := range fes {
			if r.bad[fe.Field()] {
				continue
			}
			r.errs = append(r.errs, translate(fe))
		}
	}
	if len(r.errs) == 0 {
		return nil
	}
	sort.SliceStable(r.errs, func(i, j int) bool {
		return r.order[r.errs[i].Field] < r.order[r.errs[j].Field]
	})
	return r.errs
}

func translate(fe validator.FieldError) ValidationError {
	out := ValidationError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		out.Kind, out.Rule, out.Message = MissingField, "required", "Field required"
	case "min":
		out.Kind, out.Rule = TooShort, "min_length="+fe.Param()
		out.Message = fmt.Sprintf("String should have at least %s characters", fe.Param())
	case "email":
		out.Kind, out.Rule = BadFormat, "email"
		out.Message = "value is not a valid email address"
	case "gte":
		out.Kind, out.Rule = OutOfRange, "ge="+fe.Param()
		out.Message = "Input should be greater than or equal to " + fe.Param()
	case "lte":
		out.Kind, out.Rule = OutOfRange, "le="+fe.Param()
		out.Message = "Input should be less than or equal to " + fe.Param()
	default:
		out.Kind, out.Rule = BadFormat, fe.Tag()
		out.Message = "Input failed the " + fe.Tag() + " check"
	}
	return out
}
