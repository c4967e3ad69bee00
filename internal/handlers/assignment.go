package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/monocle-dev/studytrack/internal/utils"
)

type AssignmentRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	DueDate     string            `json:"due_date" binding:"required"`
	Priority    types.OptionalInt `json:"priority"`
	CourseID    types.OptionalInt `json:"course_id"`
}

func (r AssignmentRequest) fields() store.AssignmentFields {
	return store.AssignmentFields{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority.Ptr(),
		CourseID:    r.CourseID.Uint(),
	}
}

const assignmentBodyError = "title, due_date and course_id are required; priority and course_id must be integers"

func (h *Handler) ListAssignments(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	assignments, err := h.store.ListAssignments(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.AssignmentResponse, 0, len(assignments))

	for _, assignment := range assignments {
		response = append(response, assignmentResponse(assignment))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateAssignment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var body AssignmentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, assignmentBodyError)
		return
	}

	assignment, err := h.store.CreateAssignment(ctx.Request.Context(), userID, body.fields())

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceAssignment, Action: realtime.ActionCreated, ID: assignment.ID})

	ctx.JSON(http.StatusCreated, assignmentResponse(assignment))
}

func (h *Handler) UpdateAssignment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	assignmentID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		abort(ctx, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	var body AssignmentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, assignmentBodyError)
		return
	}

	assignment, err := h.store.UpdateAssignment(ctx.Request.Context(), userID, assignmentID, body.fields())

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceAssignment, Action: realtime.ActionUpdated, ID: assignment.ID})

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Assignment updated successfully",
		"assignment": assignmentResponse(assignment),
	})
}

func (h *Handler) DeleteAssignment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	assignmentID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		abort(ctx, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	if err := h.store.DeleteAssignment(ctx.Request.Context(), userID, assignmentID); err != nil {
		respondError(ctx, err)
		return
	}

	h.events.Publish(userID, realtime.Event{Resource: realtime.ResourceAssignment, Action: realtime.ActionDeleted, ID: assignmentID})

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
