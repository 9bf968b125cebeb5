package routes

import (
	"github.com/esportsarena/competition-core/handlers"
	"github.com/esportsarena/competition-core/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes wires all HTTP routes. Reads are public; mutating routes sit
// behind bearer-token authentication.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	jwtSecret []byte,
	standingsHandler *handlers.StandingsHandler,
	tournamentEntryHandler *handlers.TournamentEntryHandler,
	challengeHandler *handlers.ChallengeHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthHandler.Check)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	authenticated := middleware.Authenticate(jwtSecret)

	router.Route("/leagues", func(r chi.Router) {
		r.Get("/{leagueID}/teams", standingsHandler.ListByLeague)
		r.Get("/{leagueID}/stats", standingsHandler.Stats)
		r.Get("/teams/{entryID}", standingsHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/{leagueID}/teams", standingsHandler.Register)
			r.Post("/{leagueID}/recompute-positions", standingsHandler.RecomputePositions)
			r.Delete("/{leagueID}/teams/{teamID}", standingsHandler.DeleteByPair)
			r.Put("/teams/{entryID}", standingsHandler.Update)
			r.Delete("/teams/{entryID}", standingsHandler.Delete)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/{tournamentID}/teams", tournamentEntryHandler.ListByTournament)
		r.Get("/{tournamentID}/stats", tournamentEntryHandler.Stats)
		r.Get("/{tournamentID}/teams/{teamID}", tournamentEntryHandler.GetByPair)
		r.Get("/teams/{entryID}", tournamentEntryHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/{tournamentID}/teams", tournamentEntryHandler.Register)
			r.Delete("/{tournamentID}/teams/{teamID}", tournamentEntryHandler.DeleteByPair)
			r.Put("/teams/{entryID}", tournamentEntryHandler.Update)
			r.Delete("/teams/{entryID}", tournamentEntryHandler.Delete)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}/league-entries", standingsHandler.ListByTeam)
		r.Get("/{teamID}/tournament-entries", tournamentEntryHandler.ListByTeam)
	})

	router.Route("/challenges", func(r chi.Router) {
		r.Get("/{challengeID}", challengeHandler.Get)
		r.Get("/team/{teamID}", challengeHandler.ListByTeam)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/", challengeHandler.Create)
			r.Patch("/{challengeID}/status", challengeHandler.SetStatus)
			r.Patch("/{challengeID}/scheduled-date", challengeHandler.SetScheduledDate)
			r.Delete("/{challengeID}", challengeHandler.Delete)
		})
	})
}
