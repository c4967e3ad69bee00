package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/handlers"
	"github.com/monocle-dev/studytrack/internal/logutil"
	"github.com/monocle-dev/studytrack/internal/middleware"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/rs/zerolog"
)

type Deps struct {
	Store          *store.Store
	Tokens         *auth.TokenIssuer
	Hub            *realtime.Hub
	Logger         zerolog.Logger
	AllowedOrigins []string
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logutil.GinLogger(deps.Logger))

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = types.DefaultAllowedOrigins
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", logutil.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", logutil.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var events handlers.EventPublisher
	if deps.Hub != nil {
		events = deps.Hub
	}
	h := handlers.New(deps.Store, deps.Tokens, events)
	requireAuth := middleware.AuthMiddleware(deps.Tokens)

	r.GET("/health", h.HealthCheck)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	protected := r.Group("", requireAuth)
	{
		protected.GET("/me", h.Me)

		protected.GET("/courses", h.ListCourses)
		protected.POST("/addcourse", h.CreateCourse)
		protected.PUT("/editcourse/:id", h.UpdateCourse)
		protected.DELETE("/deletecourse/:id", h.DeleteCourse)

		protected.GET("/assignments", h.ListAssignments)
		protected.POST("/addassignment", h.CreateAssignment)
		protected.PUT("/editassignment/:id", h.UpdateAssignment)
		protected.DELETE("/deleteassignment/:id", h.DeleteAssignment)
	}

	if deps.Hub != nil {
		r.GET("/ws", middleware.AuthMiddleware(deps.Tokens, middleware.AuthOptions{AllowQueryToken: true}), deps.Hub.Serve)
	}

	return r
}
