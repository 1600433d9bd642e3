package httpserver

import (
	"net/http"

	"github.com/filmgrid/movies-api/internal/catalog"
)

func (s *Server) handleListActors(w http.ResponseWriter, r *http.Request) {
	query := catalog.ListActorsQuery{Name: r.URL.Query().Get("name")}

	actors, err := s.svc.ListActors(r.Context(), query)
	if err != nil {
		s.respondFailure(w, "list actors", err)
		return
	}
	s.respondJSON(w, http.StatusOK, actors)
}

func (s *Server) handleGetActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	details, err := s.svc.GetActorDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "get actor", err)
		return
	}
	if details == nil {
		s.respondNotFound(w)
		return
	}
	s.respondJSON(w, http.StatusOK, details)
}

func (s *Server) handleCreateActor(w http.ResponseWriter, r *http.Request) {
	var cmd catalog.CreateActorCommand
	if err := decodeJSONBody(w, r, &cmd); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if err := s.valid.Check(cmd); err != nil {
		s.respondFailure(w, "create actor", err)
		return
	}

	id, err := s.svc.CreateActor(r.Context(), cmd)
	if err != nil {
		s.respondFailure(w, "create actor", err)
		return
	}

	details, err := s.svc.GetActorDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "create actor", err)
		return
	}

	w.Header().Set("Location", "/actors/"+id.String())
	s.respondJSON(w, http.StatusCreated, details)
}

func (s *Server) handleUpdateActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	var cmd catalog.UpdateActorCommand
	if err := decodeJSONBody(w, r, &cmd); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	cmd.ID = id
	if err := s.valid.Check(cmd); err != nil {
		s.respondFailure(w, "update actor", err)
		return
	}

	updated, err := s.svc.UpdateActor(r.Context(), cmd)
	if err != nil {
		s.respondFailure(w, "update actor", err)
		return
	}
	if !updated {
		s.respondNotFound(w)
		return
	}

	details, err := s.svc.GetActorDetails(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "update actor", err)
		return
	}
	if details == nil {
		s.respondNotFound(w)
		return
	}
	s.respondJSON(w, http.StatusOK, details)
}

func (s *Server) handleDeleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondNotFound(w)
		return
	}

	deleted, err := s.svc.DeleteActor(r.Context(), id)
	if err != nil {
		s.respondFailure(w, "delete actor", err)
		return
	}
	if !deleted {
		s.respondNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
