package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/types"
)

var ErrInvalidID = errors.New("invalid id")

func SetCurrentUserID(ctx *gin.Context, userID uint) {
	ctx.Set(types.ContextUserKey, userID)
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return 0, errors.New("user not authenticated")
	}

	userID, ok := value.(uint)

	if !ok || userID == 0 {
		return 0, errors.New("invalid user id in context")
	}

	return userID, nil
}

// GetIDParam parses a positive numeric path parameter.
func GetIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}

	return uint(id), nil
}
