package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/doctorprofile/profile-api/internal/schema"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryStore_CreateAndList(t *testing.T) {
	s := NewMemoryStore("")
	ctx := context.Background()

	rec := &schema.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello there"}
	id, err := s.CreateDocument(ctx, rec.Collection(), rec)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	e, ok := s.Get("contactmessage", id)
	require.True(t, ok)
	require.Equal(t, rec, e.Record)
	require.False(t, e.CreatedAt.IsZero())

	id2, err := s.CreateDocument(ctx, "appointment", &schema.Appointment{FullName: "Jo"})
	require.NoError(t, err)
	require.NotEqual(t, id, id2)

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"appointment", "contactmessage"}, names)
	require.Equal(t, "memory", s.Name())
}

func TestMemoryStore_Fail(t *testing.T) {
	s := NewMemoryStore("clinic")
	boom := errors.New("connection refused")
	s.Fail(boom)

	_, err := s.CreateDocument(context.Background(), "appointment", &schema.Appointment{})
	require.ErrorIs(t, err, boom)
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "appointment", pe.Collection)
	require.Zero(t, s.Count("appointment"))

	s.Fail(nil)
	_, err = s.CreateDocument(context.Background(), "appointment", &schema.Appointment{})
	require.NoError(t, err)
	require.Equal(t, 1, s.Count("appointment"))
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.CreateDocument(context.Background(), "contactmessage", nil)
	require.ErrorIs(t, err, ErrNotInitialized)
	require.Equal(t, "insert into contactmessage: database not initialized", err.Error())
}

func TestStamp_UsesSnakeCaseFields(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	a := &schema.Appointment{FullName: "Jo", Email: "jo@example.com", Status: schema.StatusPending}
	doc, err := stamp(a, now)
	require.NoError(t, err)
	require.Equal(t, "Jo", doc["full_name"])
	require.Equal(t, "pending", doc["status"])
	require.Nil(t, doc["notes"])
	require.Contains(t, doc, "created_at")
	require.Contains(t, doc, "updated_at")
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	require.Equal(t, oid.Hex(), idString(oid))
	require.Equal(t, "abc", idString("abc"))
	require.Equal(t, "42", idString(42))
}
