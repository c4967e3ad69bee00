package logutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

func newRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}

// GinLogger puts a request scoped logger in the request context and writes
// one access line per request.
func GinLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		reqID := ctx.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = newRequestID()
		}
		ctx.Header(RequestIDHeader, reqID)

		log := base.With().
			Str("request.id", reqID).
			Str("http.method", ctx.Request.Method).
			Str("http.path", ctx.Request.URL.Path).
			Logger()
		ctx.Request = ctx.Request.WithContext(WithLogger(ctx.Request.Context(), log))

		ctx.Next()

		status := ctx.Writer.Status()
		event := log.Info()
		if status >= 500 {
			event = log.Error()
		}

		event.
			Int("http.status", status).
			Dur("latency", time.Since(start)).
			Int("http.size", ctx.Writer.Size()).
			Str("client.ip", ctx.ClientIP()).
			Msg("Request handled")
	}
}
