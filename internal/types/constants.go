package types

const (
	ContextUserKey = "user_id"

	// AccessTokenQueryParam carries the bearer token on websocket upgrades,
	// where browsers cannot set an Authorization header.
	AccessTokenQueryParam = "access_token"
)

// DefaultAllowedOrigins are the local front-end dev servers.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}
