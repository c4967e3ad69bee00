package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/logutil"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/monocle-dev/studytrack/internal/utils"
)

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(ctx *gin.Context) {
	var body CredentialsRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.Register(ctx.Request.Context(), body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	log := logutil.GetOrDefault(ctx.Request.Context())
	log.Info().Uint("user.id", user.ID).Msg("User registered")

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var body CredentialsRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		abort(ctx, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.VerifyCredentials(ctx.Request.Context(), body.Username, body.Password)

	// Unknown user and wrong password look the same to the client.
	if errors.Is(err, store.ErrUserNotFound) {
		err = auth.ErrInvalidCredentials
	}

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
	})
}

func (h *Handler) Me(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.store.GetUser(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
