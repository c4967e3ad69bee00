package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/monocle-dev/studytrack/internal/utils"
)

type CourseRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r CourseRequest) fields() store.CourseFields {
	return store.CourseFields{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

func (h *Handler) ListCourses(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	courses, err := h.store.ListCourses(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.CourseResponse, 0, len(courses))

	for _, course := range courses {
		response = append(response, courseResponse(course))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateCourse(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var body CourseRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, "name, start_date and end_date are required")
		return
	}

	course, err := h.store.CreateCourse(ctx.Request.Context(), userID, body.fields())

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceCourse, Action: realtime.ActionCreated, ID: course.ID})

	ctx.JSON(http.StatusCreated, courseResponse(course))
}

func (h *Handler) UpdateCourse(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	courseID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		abort(ctx, http.StatusBadRequest, "Invalid course ID")
		return
	}

	var body CourseRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, "name, start_date and end_date are required")
		return
	}

	course, err := h.store.UpdateCourse(ctx.Request.Context(), userID, courseID, body.fields())

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceCourse, Action: realtime.ActionUpdated, ID: course.ID})

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Course updated successfully",
		"course":  courseResponse(course),
	})
}

func (h *Handler) DeleteCourse(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	courseID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		abort(ctx, http.StatusBadRequest, "Invalid course ID")
		return
	}

	if err := h.store.DeleteCourse(ctx.Request.Context(), userID, courseID); err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceCourse, Action: realtime.ActionDeleted, ID: courseID})

	ctx.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
