package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jardellitieri/placar-magico/controller"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Get("/auth/login", authLoginHandler(ctrl, render))
	r.Get("/auth/callback", authCallbackHandler(ctrl, render))

	r.Group(func(r chi.Router) {
		r.Use(requireSession(ctrl, render))

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playersHandler(ctrl, render))
			r.Post("/", addPlayerHandler(ctrl, render))
			r.Get("/{playerID}", getPlayerHandler(ctrl, render))
			r.Post("/{playerID}", updatePlayerHandler(ctrl, render))
		})

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", draftHandler(ctrl, render))
			r.Post("/generate", generateDraftHandler(ctrl, render))
			r.Post("/clear", clearDraftHandler(ctrl, render))
			r.Post("/swap", swapHandler(ctrl, render))
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", gamesHandler(ctrl, render))
			r.Post("/", recordGameHandler(ctrl, render))
			r.Get("/{gameID}", editGameFormHandler(ctrl, render))
			r.Post("/{gameID}", updateGameHandler(ctrl, render))
		})

		r.Get("/stats", statsHandler(ctrl, render))
		r.Get("/export", exportHandler(ctrl, render))
		r.Post("/voice", voiceHandler(ctrl, render))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions
			r.Post("/reset", resetStatisticsHandler(ctrl, render))
		})
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
