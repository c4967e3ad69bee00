package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/monocle-dev/studytrack/internal/logutil"
)

const shutdownTimeout = 30 * time.Second

// Serve runs handler on addr until ctx is cancelled, then drains open
// requests for up to shutdownTimeout. A listener failure is returned as is.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", addr).Logger()

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       5 * time.Minute,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting HTTP server")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
		return err
	}

	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
