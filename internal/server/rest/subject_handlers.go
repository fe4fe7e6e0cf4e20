package rest

import (
	"net/http"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

type deleteSubjectResponse struct {
	DeletedNotes int64 `json:"deleted_notes"`
}

func (s *Server) listSubjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Subjects.List(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createSubject(w http.ResponseWriter, r *http.Request) {
	var in models.SubjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	sub, err := s.svc.Subjects.Create(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) getSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sub, err := s.svc.Subjects.Get(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) updateSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.SubjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	sub, err := s.svc.Subjects.Update(r.Context(), actorFrom(r.Context()), id, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) deleteSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := s.svc.Subjects.Delete(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "subject deleted", "subject_id", id, "notes", n)
	writeJSON(w, http.StatusOK, deleteSubjectResponse{DeletedNotes: n})
}
