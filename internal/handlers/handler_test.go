package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/middleware"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/testutil"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	userID uint
	event  realtime.Event
}

type recorder struct {
	mu     sync.Mutex
	events []published
}

func (r *recorder) Publish(userID uint, ev realtime.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, published{userID: userID, event: ev})
}

func (r *recorder) all() []published {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]published(nil), r.events...)
}

func newEngine(t *testing.T, events EventPublisher) (*gin.Engine, *store.Store, *auth.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := testutil.NewStore(t)
	tokens, err := auth.NewTokenIssuer("handler-secret", time.Hour)
	require.NoError(t, err)

	h := New(s, tokens, events)
	r := gin.New()
	r.POST("/register", h.Register)
	authed := r.Group("", middleware.AuthMiddleware(tokens))
	authed.POST("/addcourse", h.CreateCourse)
	authed.PUT("/editcourse/:id", h.UpdateCourse)
	authed.DELETE("/deletecourse/:id", h.DeleteCourse)
	authed.POST("/addassignment", h.CreateAssignment)
	authed.DELETE("/deleteassignment/:id", h.DeleteAssignment)
	return r, s, tokens
}

func TestWritesPublishEvents(t *testing.T) {
	events := &recorder{}
	r, s, tokens := newEngine(t, events)

	user, err := s.Register(context.Background(), "alice", "pw")
	require.NoError(t, err)
	token, err := tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)
	bearer := "Bearer " + token

	apitest.New().Handler(r).
		Post("/addcourse").
		Header("Authorization", bearer).
		JSON(`{"name": "CS101", "start_date": "2024-01-10", "end_date": "2024-05-01"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.user_id", float64(user.ID))).
		End()

	courses, err := s.ListCourses(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	courseID := courses[0].ID

	apitest.New().Handler(r).
		Post("/addassignment").
		Header("Authorization", bearer).
		JSON(fmt.Sprintf(`{"title": "HW1", "due_date": "2024-02-01", "course_id": %d}`, courseID)).
		Expect(t).
		Status(http.StatusCreated).
		End()

	// A rejected write publishes nothing.
	apitest.New().Handler(r).
		Put(fmt.Sprintf("/editcourse/%d", courseID)).
		Header("Authorization", bearer).
		JSON(`{"name": "CS101", "start_date": "2024-06-10", "end_date": "2024-05-01"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	apitest.New().Handler(r).
		Delete(fmt.Sprintf("/deletecourse/%d", courseID)).
		Header("Authorization", bearer).
		Expect(t).
		Status(http.StatusOK).
		End()

	got := events.all()
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, user.ID, p.userID)
	}
	assert.Equal(t, realtime.Event{Resource: realtime.ResourceCourse, Action: realtime.ActionCreated, ID: courseID}, got[0].event)
	assert.Equal(t, realtime.ResourceAssignment, got[1].event.Resource)
	assert.Equal(t, realtime.ActionCreated, got[1].event.Action)
	assert.Equal(t, realtime.Event{Resource: realtime.ResourceCourse, Action: realtime.ActionDeleted, ID: courseID}, got[2].event)
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		err    error
		status int
		body   string
	}{
		"validation": {&store.ValidationError{Field: "name", Message: "is required"}, http.StatusBadRequest, `{"error": "name: is required"}`},
		"conflict":   {store.ErrUsernameTaken, http.StatusBadRequest, `{"error": "Username already exists"}`},
		"course":     {store.ErrCourseNotFound, http.StatusNotFound, `{"error": "Course not found"}`},
		"wrapped":    {fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound, `{"error": "lookup: User not found"}`},
		"password":   {auth.ErrInvalidCredentials, http.StatusUnauthorized, `{"error": "Invalid username or password"}`},
		"token":      {auth.ErrInvalidToken, http.StatusUnauthorized, `{"error": "Invalid or expired token"}`},
		"other":      {errors.New("disk on fire"), http.StatusInternalServerError, `{"error": "Internal server error"}`},
	}

	for name, c := range cases {
		r := gin.New()
		r.GET("/", func(ctx *gin.Context) { respondError(ctx, c.err) })

		apitest.New(name).Handler(r).
			Get("/").
			Expect(t).
			Status(c.status).
			Body(c.body).
			End()
	}
}

func TestNilPublisherIsAllowed(t *testing.T) {
	r, s, tokens := newEngine(t, nil)

	user, err := s.Register(context.Background(), "alice", "pw")
	require.NoError(t, err)
	token, err := tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)

	apitest.New().Handler(r).
		Post("/addcourse").
		Header("Authorization", "Bearer "+token).
		JSON(`{"name": "CS101", "start_date": "2024-01-10", "end_date": "2024-05-01"}`).
		Expect(t).
		Status(http.StatusCreated).
		End()
}
