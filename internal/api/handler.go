package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctorprofile/profile-api/internal/assets"
	"github.com/doctorprofile/profile-api/internal/content"
	"github.com/doctorprofile/profile-api/internal/diagnostics"
	"github.com/doctorprofile/profile-api/internal/schema"
	"github.com/doctorprofile/profile-api/pkg/logger"
	"github.com/doctorprofile/profile-api/pkg/metrics"
)

const photoKey = "doctor.jpg"

// Handler serves the public routes.
type Handler struct {
	deps Deps
}

func (h *Handler) limited(next gin.HandlerFunc) []gin.HandlerFunc {
	if h.deps.WriteLimiter == nil {
		return []gin.HandlerFunc{next}
	}
	return []gin.HandlerFunc{h.deps.WriteLimiter, next}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Doctor Profile API is running"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Profile returns the doctor's public profile for the hero/about sections.
func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, content.Profile())
}

func (h *Handler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, content.Testimonials())
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	h.submit(c, schema.KindAppointment)
}

func (h *Handler) CreateContact(c *gin.Context) {
	h.submit(c, schema.KindContactMessage)
}

// submit validates the body as kind and hands it to the store in a single attempt.
// Invalid payloads never reach the store.
func (h *Handler) submit(c *gin.Context, kind schema.Kind) {
	collection := string(kind)
	log := logger.With("collection", collection)

	rec, err := schema.DecodeJSON(c.Request.Body, kind)
	if err != nil {
		var ve schema.ValidationErrors
		if !errors.As(err, &ve) {
			log.Errorf("decode failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		metrics.Submissions.WithLabelValues(collection, "invalid").Inc()
		log.Debugf("rejected submission: %v", ve)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetail(ve)})
		return
	}
	doc, ok := rec.(schema.Document)
	if !ok {
		log.Errorf("%T is not a persistable record", rec)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "record kind cannot be stored"})
		return
	}

	id, err := h.deps.Store.CreateDocument(c.Request.Context(), doc.Collection(), doc)
	if err != nil {
		metrics.Submissions.WithLabelValues(collection, "failed").Inc()
		log.Errorf("store write failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	metrics.Submissions.WithLabelValues(collection, "stored").Inc()
	log.With("id", id).Infof("submission stored")
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// Diagnostics reports backend and database connectivity. It always answers 200.
func (h *Handler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, diagnostics.Probe(c.Request.Context(), h.deps.Handle, h.deps.DatabaseURLSet))
}

// Photo redirects to a short-lived link for the doctor's photo.
func (h *Handler) Photo(c *gin.Context) {
	if h.deps.Assets == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
		return
	}
	u, err := h.deps.Assets.PresignedURL(c.Request.Context(), photoKey)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		logger.With("key", photoKey).Errorf("asset lookup failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "asset storage unavailable"})
		return
	}
	c.Redirect(http.StatusFound, u)
}

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Loc   []string `json:"loc"`
	Field string   `json:"field"`
	Type  string   `json:"type"`
	Rule  string   `json:"rule"`
	Msg   string   `json:"msg"`
}

func validationDetail(ve schema.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		loc := []string{"body"}
		if fe.Field != "body" {
			loc = append(loc, fe.Field)
		}
		out = append(out, FieldError{Loc: loc, Field: fe.Field, Type: fe.Kind.String(), Rule: fe.Rule, Msg: fe.Message})
	}
	return out
}
