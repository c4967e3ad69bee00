package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetCurrentUserID(ctx)
	assert.Error(t, err)

	SetCurrentUserID(ctx, 7)
	id, err := GetCurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestGetIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, want := range map[string]uint{"1": 1, "42": 42} {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Params = gin.Params{{Key: "id", Value: raw}}
		id, err := GetIDParam(ctx, "id")
		require.NoError(t, err, raw)
		assert.Equal(t, want, id)
	}

	for _, raw := range []string{"", "0", "-1", "abc", "1.5", "99999999999"} {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := GetIDParam(ctx, "id")
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}
