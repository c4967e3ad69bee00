package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/monocle-dev/studytrack/internal/utils"
)

// TokenVerifier resolves a bearer token into the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

type AuthOptions struct {
	// AllowQueryToken also accepts the token from the access_token query
	// parameter. Only used for websocket upgrades.
	AllowQueryToken bool
}

func bearerToken(ctx *gin.Context, opts AuthOptions) (string, string) {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		if opts.AllowQueryToken {
			if token := ctx.Query(types.AccessTokenQueryParam); token != "" {
				return token, ""
			}
		}
		return "", "Authorization token is required"
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", "Authorization header format must be Bearer {token}"
	}

	return strings.TrimSpace(parts[1]), ""
}

// AuthMiddleware rejects the request with 401 unless it carries a valid token,
// and records the token's user id for the handlers. It does not look the user
// up; handlers report a vanished user as not found.
func AuthMiddleware(tokens TokenVerifier, opts ...AuthOptions) gin.HandlerFunc {
	var o AuthOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	return func(ctx *gin.Context) {
		tokenString, problem := bearerToken(ctx, o)

		if problem != "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: problem})
			return
		}

		userID, err := tokens.Verify(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		utils.SetCurrentUserID(ctx, userID)
		ctx.Next()
	}
}
