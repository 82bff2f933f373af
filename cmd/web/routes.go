package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/petarvukov/ttliga/internal/httputil"
	"github.com/petarvukov/ttliga/internal/league"
	"github.com/petarvukov/ttliga/internal/service"
)

func newRouter(tournaments *service.TournamentService, matches *service.MatchService, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Serve the static frontend
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Route("/api", func(r chi.Router) {
		// The ?t= query parameter is the legacy name-based address of a
		// tournament detail page.
		r.Get("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			if slug := r.URL.Query().Get("t"); slug != "" {
				tournament, err := tournaments.GetBySlug(r.Context(), slug)
				if err != nil {
					writeServiceError(w, err)
					return
				}
				httputil.WriteJSON(w, http.StatusOK, tournament)
				return
			}

			list, err := tournaments.List(r.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to list tournaments", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, list)
		})

		r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			var input struct {
				Name   string        `json:"name"`
				Format league.Format `json:"format"`
			}
			if err := httputil.ReadJSON(w, r, &input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}

			tournament, err := tournaments.Create(r.Context(), input.Name, input.Format)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, tournament)
		})

		r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
			tournament, err := tournaments.Get(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, tournament)
		})

		r.Delete("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
			if err := tournaments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
				writeServiceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/tournaments/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
			var input struct {
				Name string `json:"name"`
			}
			if err := httputil.ReadJSON(w, r, &input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}

			team, err := tournaments.AddTeam(r.Context(), chi.URLParam(r, "id"), input.Name)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, team)
		})

		r.Delete("/tournaments/{id}/teams/{teamID}", func(w http.ResponseWriter, r *http.Request) {
			err := tournaments.DeleteTeam(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "teamID"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/tournaments/{id}/teams/{teamID}/players", func(w http.ResponseWriter, r *http.Request) {
			var input struct {
				Name string `json:"name"`
			}
			if err := httputil.ReadJSON(w, r, &input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}

			player, err := tournaments.AddPlayer(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "teamID"), input.Name)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, player)
		})

		r.Delete("/tournaments/{id}/teams/{teamID}/players/{playerID}", func(w http.ResponseWriter, r *http.Request) {
			err := tournaments.DeletePlayer(r.Context(), chi.URLParam(r, "id"),
				chi.URLParam(r, "teamID"), chi.URLParam(r, "playerID"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		// Regeneration clears all recorded results, so the client has to
		// resend with ?regenerate=true after the 409.
		r.Post("/tournaments/{id}/matches", func(w http.ResponseWriter, r *http.Request) {
			regenerate := r.URL.Query().Get("regenerate") == "true"

			generated, err := tournaments.GenerateMatches(r.Context(), chi.URLParam(r, "id"), regenerate)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, generated)
		})

		r.Get("/tournaments/{id}/matches/{matchID}", func(w http.ResponseWriter, r *http.Request) {
			editor, err := matches.Editor(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "matchID"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, editor)
		})

		r.Put("/tournaments/{id}/matches/{matchID}/results", func(w http.ResponseWriter, r *http.Request) {
			var input struct {
				Results []service.IndividualResultInput `json:"results"`
			}
			if err := httputil.ReadJSON(w, r, &input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}

			match, err := matches.SaveResults(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "matchID"), input.Results)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, match)
		})

		r.Post("/matches/{matchID}/individual/{index}/sets", func(w http.ResponseWriter, r *http.Request) {
			index, err := strconv.Atoi(chi.URLParam(r, "index"))
			if err != nil {
				httputil.BadRequest(w, "Invalid individual match index", err)
				return
			}

			var input struct {
				Sets string `json:"sets"`
			}
			if err := httputil.ReadJSON(w, r, &input); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}

			match, err := matches.EnterSets(r.Context(), chi.URLParam(r, "matchID"), index, input.Sets)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, match)
		})

		r.Get("/tournaments/{id}/standings", func(w http.ResponseWriter, r *http.Request) {
			standings, err := tournaments.Standings(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, standings)
		})
	})

	return r
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTournamentNotFound),
		errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrMatchNotFound):
		httputil.NotFound(w, err.Error(), err)

	case errors.Is(err, service.ErrMatchesAlreadyGenerated):
		httputil.Conflict(w, err.Error(), err)

	case errors.Is(err, service.ErrTournamentNameRequired),
		errors.Is(err, service.ErrTeamNameRequired),
		errors.Is(err, service.ErrPlayerNameRequired):
		httputil.UnprocessableEntity(w, err.Error(), err)

	case errors.Is(err, service.ErrInvalidFormat),
		errors.Is(err, service.ErrInsufficientTeams),
		errors.Is(err, service.ErrIndividualMatchIndex):
		httputil.BadRequest(w, err.Error(), err)

	default:
		httputil.InternalServerError(w, "Unexpected error", err)
	}
}
