package rest

import "net/http"

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Views.Dashboard(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.Views.Search(r.Context(), actorFrom(r.Context()), r.URL.Query().Get("q"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) statistics(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Views.Statistics(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) recentNotes(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Views.RecentNotes(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
