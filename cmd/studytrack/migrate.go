package main

import (
	"os"

	"github.com/monocle-dev/studytrack/db"
	"github.com/monocle-dev/studytrack/internal/config"
	"github.com/monocle-dev/studytrack/internal/logutil"
	"github.com/urfave/cli/v2"
)

func migrateCmd() *cli.Command {
	cfg := config.Default()

	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema and exit",
		Flags: config.DatabaseFlags(&cfg),
		Action: func(c *cli.Context) error {
			if err := cfg.ValidateDatabase(); err != nil {
				return err
			}

			logger, err := logutil.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			opts := cfg.DatabaseOptions()
			opts.Logger = logger

			conn, err := db.Open(opts)
			if err != nil {
				return err
			}

			if err := db.Migrate(conn); err != nil {
				return err
			}

			logger.Info().Str("db.driver", cfg.DBDriver).Msg("Database migrated")
			return nil
		},
	}
}
