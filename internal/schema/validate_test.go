package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment() map[string]any {
	return map[string]any{
		"full_name":      "Jo",
		"email":          "jo@example.com",
		"phone":          "5551234",
		"preferred_date": "2024-01-01",
		"preferred_time": "10:00",
		"service":        "Checkup",
	}
}

func asErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	return ve
}

func TestValidateAppointment_DefaultsStatus(t *testing.T) {
	a, err := ValidateAppointment(validAppointment())
	require.NoError(t, err)
	assert.Equal(t, "Jo", a.FullName)
	assert.Equal(t, StatusPending, a.Status)
	assert.Nil(t, a.Notes)
	assert.Equal(t, "appointment", a.Collection())
}

func TestValidateAppointment_KeepsExplicitStatusAndNotes(t *testing.T) {
	raw := validAppointment()
	raw["status"] = "urgent"
	raw["notes"] = "first visit"
	a, err := ValidateAppointment(raw)
	require.NoError(t, err)
	assert.Equal(t, "urgent", a.Status)
	require.NotNil(t, a.Notes)
	assert.Equal(t, "first visit", *a.Notes)
}

func TestValidateAppointment_NullNotesIsAbsent(t *testing.T) {
	raw := validAppointment()
	raw["notes"] = nil
	raw["status"] = nil
	a, err := ValidateAppointment(raw)
	require.NoError(t, err)
	assert.Nil(t, a.Notes)
	assert.Equal(t, StatusPending, a.Status)
}

func TestValidateAppointment_DateIsFreeText(t *testing.T) {
	raw := validAppointment()
	raw["preferred_date"] = "next Tuesday-ish"
	_, err := ValidateAppointment(raw)
	require.NoError(t, err)
}

func TestValidateAppointment_MissingEmail(t *testing.T) {
	raw := validAppointment()
	delete(raw, "email")
	ve := asErrors(t, mustFail(ValidateAppointment(raw)))
	require.Len(t, ve, 1)
	assert.Equal(t, "email", ve[0].Field)
	assert.Equal(t, MissingField, ve[0].Kind)
	assert.Equal(t, "required", ve[0].Rule)
}

func TestValidateAppointment_MalformedEmail(t *testing.T) {
	for _, bad := range []string{"bad-email", "jo@", "@example.com", ""} {
		raw := validAppointment()
		raw["email"] = bad
		ve := asErrors(t, mustFail(ValidateAppointment(raw)))
		require.True(t, ve.Has("email"), "email %q should be rejected", bad)
		assert.Equal(t, BadFormat, ve[0].Kind)
		assert.Equal(t, "email", ve[0].Rule)
	}
}

func TestValidateAppointment_TooShort(t *testing.T) {
	raw := validAppointment()
	raw["full_name"] = "J"
	raw["phone"] = "555"
	ve := asErrors(t, mustFail(ValidateAppointment(raw)))
	require.Len(t, ve, 2)
	assert.Equal(t, "full_name", ve[0].Field)
	assert.Equal(t, TooShort, ve[0].Kind)
	assert.Equal(t, "min_length=2", ve[0].Rule)
	assert.Equal(t, "phone", ve[1].Field)
	assert.Equal(t, "min_length=7", ve[1].Rule)
}

func TestValidateAppointment_MinLengthCountsCharacters(t *testing.T) {
	raw := validAppointment()
	raw["full_name"] = "Zoë"
	_, err := ValidateAppointment(raw)
	require.NoError(t, err)
}

func TestValidateAppointment_WrongType(t *testing.T) {
	raw := validAppointment()
	raw["phone"] = 5551234
	ve := asErrors(t, mustFail(ValidateAppointment(raw)))
	require.Len(t, ve, 1)
	assert.Equal(t, "phone", ve[0].Field)
	assert.Equal(t, BadFormat, ve[0].Kind)
	assert.Equal(t, "string", ve[0].Rule)
}

func TestValidateAppointment_MissingEverything(t *testing.T) {
	ve := asErrors(t, mustFail(ValidateAppointment(map[string]any{})))
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		assert.Equal(t, MissingField, fe.Kind)
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"full_name", "email", "phone", "preferred_date", "preferred_time", "service"}, fields)
}

func TestValidateContactMessage_ReportsAllViolations(t *testing.T) {
	raw := map[string]any{"name": "A", "email": "bad-email", "subject": "Hi", "message": "Hello there"}
	ve := asErrors(t, mustFail(ValidateContactMessage(raw)))
	require.Len(t, ve, 2)
	assert.Equal(t, "name", ve[0].Field)
	assert.Equal(t, TooShort, ve[0].Kind)
	assert.Equal(t, "email", ve[1].Field)
	assert.Equal(t, BadFormat, ve[1].Kind)
	assert.Contains(t, ve.Error(), "name")
	assert.Contains(t, ve.Error(), "email")
}

func TestValidateContactMessage_ShortMessage(t *testing.T) {
	raw := map[string]any{"name": "Ann", "email": "ann@example.com", "subject": "Hi", "message": "Yo"}
	ve := asErrors(t, mustFail(ValidateContactMessage(raw)))
	require.Len(t, ve, 1)
	assert.Equal(t, "message", ve[0].Field)
	assert.Equal(t, "min_length=5", ve[0].Rule)
}

func TestValidateContactMessage_OK(t *testing.T) {
	m, err := ValidateContactMessage(map[string]any{"name": "Ann", "email": "ann@example.com", "subject": "Hi", "message": "Hello there"})
	require.NoError(t, err)
	assert.Equal(t, "contactmessage", m.Collection())
}

func TestValidateTestimonial_RatingRange(t *testing.T) {
	cases := []struct {
		rating any
		kind   ErrorKind
		rule   string
		ok     bool
	}{
		{rating: 1, ok: true},
		{rating: 5, ok: true},
		{rating: 5.0, ok: true},
		{rating: 0, kind: OutOfRange, rule: "ge=1"},
		{rating: 6, kind: OutOfRange, rule: "le=5"},
		{rating: 4.5, kind: BadFormat, rule: "integer"},
		{rating: "five", kind: BadFormat, rule: "integer"},
	}
	for _, tc := range cases {
		tm, err := ValidateTestimonial(map[string]any{"name": "N", "text": "T", "rating": tc.rating})
		if tc.ok {
			require.NoError(t, err, "rating %v", tc.rating)
			assert.Nil(t, tm.Date)
			continue
		}
		ve := asErrors(t, err)
		require.Len(t, ve, 1, "rating %v", tc.rating)
		assert.Equal(t, "rating", ve[0].Field)
		assert.Equal(t, tc.kind, ve[0].Kind)
		assert.Equal(t, tc.rule, ve[0].Rule)
	}
}

func TestValidateTestimonial_Date(t *testing.T) {
	tm, err := ValidateTestimonial(map[string]any{"name": "N", "text": "T", "rating": 3, "date": "2024-03-01T10:00:00Z"})
	require.NoError(t, err)
	require.NotNil(t, tm.Date)
	assert.Equal(t, 2024, tm.Date.Year())

	_, err = ValidateTestimonial(map[string]any{"name": "N", "text": "T", "rating": 3, "date": "yesterday"})
	ve := asErrors(t, err)
	assert.Equal(t, "datetime", ve[0].Rule)
}

func TestValidateDoctorProfile_Defaults(t *testing.T) {
	p, err := ValidateDoctorProfile(map[string]any{
		"name":             "Dr. X",
		"title":            "GP",
		"location":         "Town",
		"bio":              "Bio",
		"specialties":      []any{"A"},
		"years_experience": 3,
		"education":        []any{"MD"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, p.Certifications)
	assert.Equal(t, []string{"English"}, p.Languages)
	assert.Nil(t, p.PhotoURL)
	assert.Nil(t, p.Socials)
}

func TestValidateDoctorProfile_BadTypes(t *testing.T) {
	_, err := ValidateDoctorProfile(map[string]any{
		"name":             "Dr. X",
		"title":            "GP",
		"location":         "Town",
		"bio":              "Bio",
		"specialties":      []any{"A", 1},
		"years_experience": "ten",
		"education":        []any{"MD"},
		"socials":          map[string]any{"x": 1},
	})
	ve := asErrors(t, err)
	assert.True(t, ve.Has("specialties"))
	assert.True(t, ve.Has("years_experience"))
	assert.True(t, ve.Has("socials"))
}

func TestDecodeJSON(t *testing.T) {
	rec, err := DecodeJSON(strings.NewReader(`{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Hello there","extra":true}`), KindContactMessage)
	require.NoError(t, err)
	doc, ok := rec.(Document)
	require.True(t, ok)
	assert.Equal(t, "contactmessage", doc.Collection())

	for _, body := range []string{`{"name":`, `[1,2]`, `null`, ``,
		`{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Hello there"} {"oops"`,
		`{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Hello there"} {}`,
	} {
		_, err := DecodeJSON(strings.NewReader(body), KindContactMessage)
		ve := asErrors(t, err)
		require.Len(t, ve, 1, "body %q", body)
		assert.Equal(t, "body", ve[0].Field)
		assert.Equal(t, BadFormat, ve[0].Kind)
	}
}

func TestDecodeJSON_TrailingWhitespace(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader("{\"name\":\"Ann\",\"email\":\"ann@example.com\",\"subject\":\"Hi\",\"message\":\"Hello there\"}\n  "), KindContactMessage)
	require.NoError(t, err)
}

// Display-name addresses are not normalized; only the bare address form is accepted.
func TestValidateContactMessage_DisplayNameEmail(t *testing.T) {
	_, err := ValidateContactMessage(map[string]any{
		"name": "Jo", "email": "Jo <jo@example.com>", "subject": "Hi", "message": "Hello there",
	})
	ve := asErrors(t, err)
	require.True(t, ve.Has("email"))
}

func TestDecodeJSON_IntegerFromNumber(t *testing.T) {
	rec, err := DecodeJSON(strings.NewReader(`{"name":"N","text":"T","rating":4}`), KindTestimonial)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.(*Testimonial).Rating)
}

func TestValidate_UnknownKind(t *testing.T) {
	_, err := Validate(map[string]any{}, Kind("nope"))
	require.Error(t, err)
	var ve ValidationErrors
	assert.False(t, errors.As(err, &ve))
}

func mustFail[T any](_ T, err error) error { return err }
