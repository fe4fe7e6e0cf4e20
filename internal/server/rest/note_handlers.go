package rest

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}

	list, err := s.svc.Notes.List(r.Context(), actorFrom(r.Context()), subjectID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.NoteInput
	if !decodeJSON(w, r, &in) {
		return
	}

	n, err := s.svc.Notes.Create(r.Context(), actorFrom(r.Context()), subjectID, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := s.svc.Notes.Get(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.NoteInput
	if !decodeJSON(w, r, &in) {
		return
	}

	n, err := s.svc.Notes.Update(r.Context(), actorFrom(r.Context()), id, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.svc.Notes.Delete(r.Context(), actorFrom(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) togglePin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := s.svc.Notes.TogglePin(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) exportNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	exp, err := s.svc.Exports.ExportNote(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(exp.Content))
}

func (s *Server) archiveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	arc, err := s.svc.Exports.ArchiveNote(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, arc)
}
