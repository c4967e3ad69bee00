package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/studytrack/db"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/config"
	"github.com/monocle-dev/studytrack/internal/httpserver"
	"github.com/monocle-dev/studytrack/internal/logutil"
	"github.com/monocle-dev/studytrack/internal/realtime"
	"github.com/monocle-dev/studytrack/internal/router"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	cfg := config.Default()

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: config.ServeFlags(&cfg),
		Action: func(c *cli.Context) error {
			cfg.ApplyPort(c.IsSet("addr"), os.Getenv)

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logutil.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			gin.SetMode(cfg.GinMode)

			opts := cfg.DatabaseOptions()
			opts.Logger = logger

			conn, err := db.Open(opts)
			if err != nil {
				return err
			}

			if err := db.Migrate(conn); err != nil {
				return err
			}

			hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
			if err != nil {
				return err
			}

			tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
			if err != nil {
				return err
			}

			origins := cfg.Origins()

			engine := router.NewRouter(router.Deps{
				Store:          store.New(conn, hasher),
				Tokens:         tokens,
				Hub:            realtime.NewHub(origins),
				Logger:         logger,
				AllowedOrigins: origins,
			})

			ctx := logutil.WithLogger(c.Context, logger)
			return httpserver.Serve(ctx, cfg.Addr, engine)
		},
	}
}
