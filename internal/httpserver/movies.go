package httpserver

import (
	"net/http"

	"github.com/filmgrid/movies-api/internal/catalog"
)

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	query := catalog.ListMoviesQuery{Title: r.URL.Query().Get("title")}

	movies, err := s.svc.ListMovies(r.Context(), query)
	if err != nil {
		s.respondFailure(w, "list movies", err)
		return
	}
	s.respondJSON(w, http.StatusOK, movies)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	details, err := s.svc.GetMovieDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "get movie", err)
		return
	}
	if details == nil {
		s.respondNotFound(w)
		return
	}
	s.respondJSON(w, http.StatusOK, details)
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var cmd catalog.CreateMovieCommand
	if err := decodeJSONBody(w, r, &cmd); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if err := s.valid.Check(cmd); err != nil {
		s.respondFailure(w, "create movie", err)
		return
	}

	id, err := s.svc.CreateMovie(r.Context(), cmd)
	if err != nil {
		s.respondFailure(w, "create movie", err)
		return
	}

	details, err := s.svc.GetMovieDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "create movie", err)
		return
	}

	w.Header().Set("Location", "/movies/"+id.String())
	s.respondJSON(w, http.StatusCreated, details)
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	var cmd catalog.UpdateMovieCommand
	if err := decodeJSONBody(w, r, &cmd); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	cmd.ID = id
	if err := s.valid.Check(cmd); err != nil {
		s.respondFailure(w, "update movie", err)
		return
	}

	updated, err := s.svc.UpdateMovie(r.Context(), cmd)
	if err != nil {
		s.respondFailure(w, "update movie", err)
		return
	}
	if !updated {
		s.respondNotFound(w)
		return
	}

	details, err := s.svc.GetMovieDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "update movie", err)
		return
	}
	if details == nil {
		s.respondNotFound(w)
		return
	}
	s.respondJSON(w, http.StatusOK, details)
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	deleted, err := s.svc.DeleteMovie(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "delete movie", err)
		return
	}
	if !deleted {
		s.respondNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	var cmd catalog.RateMovieCommand
	if err := decodeJSONBody(w, r, &cmd); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	cmd.ID = id
	if err := s.valid.Check(cmd); err != nil {
		s.respondFailure(w, "rate movie", err)
		return
	}

	rated, err := s.svc.RateMovie(r.Context(), cmd)
	if err != nil {
		s.respondFailure(w, "rate movie", err)
		return
	}
	if !rated {
		s.respondNotFound(w)
		return
	}

	details, err := s.svc.GetMovieDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "rate movie", err)
		return
	}
	if details == nil {
		s.respondNotFound(w)
		return
	}
	s.respondJSON(w, http.StatusOK, details)
}
