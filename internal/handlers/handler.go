package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/logutil"
	"github.com/monocle-dev/studytrack/internal/models"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/types"
)

// EventPublisher receives a notification after every successful write.
type EventPublisher interface {
	Publish(userID uint, ev realtime.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(uint, realtime.Event) {}

// Handler carries the process scoped dependencies shared by every request.
type Handler struct {
	store  *store.Store
	tokens *auth.TokenIssuer
	events EventPublisher
}

func New(s *store.Store, tokens *auth.TokenIssuer, events EventPublisher) *Handler {
	if events == nil {
		events = nopPublisher{}
	}
	return &Handler{store: s, tokens: tokens, events: events}
}

func abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, types.ErrorResponse{Error: message})
}

// respondError maps store and auth failures onto status codes. Anything
// unrecognised is logged and reported as a 500.
func respondError(ctx *gin.Context, err error) {
	var validation *store.ValidationError

	switch {
	case errors.As(err, &validation):
		abort(ctx, http.StatusBadRequest, validation.Error())
	case errors.Is(err, store.ErrUsernameTaken):
		abort(ctx, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, store.ErrNotFound):
		abort(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		abort(ctx, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		abort(ctx, http.StatusUnauthorized, "Invalid or expired token")
	default:
		log := logutil.GetOrDefault(ctx.Request.Context())
		log.Error().Err(err).Msg("Request failed")
		abort(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func courseResponse(c models.Course) types.CourseResponse {
	return types.CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartDate: store.FormatDate(c.StartDate),
		EndDate:   store.FormatDate(c.EndDate),
		UserID:    c.UserID,
	}
}

func assignmentResponse(a models.Assignment) types.AssignmentResponse {
	return types.AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     store.FormatDate(a.DueDate),
		Priority:    a.Priority,
		CourseID:    a.CourseID,
		UserID:      a.UserID,
	}
}
