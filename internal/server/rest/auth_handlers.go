package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/services"
)

type loginResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	u, err := s.svc.Users.Register(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}

	sess, err := s.svc.Users.Login(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.setTokenCookies(w, sess.Tokens)
	writeJSON(w, http.StatusOK, loginResponse{
		User:         sess.User,
		AccessToken:  sess.Tokens.AccessToken,
		RefreshToken: sess.Tokens.RefreshToken,
	})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	tok := refreshTokenFrom(w, r)
	if tok == "" {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	pair, err := s.svc.Users.RefreshToken(r.Context(), tok)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.setTokenCookies(w, pair)
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Users.Logout(r.Context(), refreshTokenFrom(w, r)); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.clearTokenCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.Users.GetUser(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) updateUsername(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUsernameInput
	if !decodeJSON(w, r, &in) {
		return
	}

	u, err := s.svc.Users.UpdateUsername(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// refreshTokenFrom reads the refresh token from a JSON body or, when the
// body carries none, from the refresh token cookie.
func refreshTokenFrom(w http.ResponseWriter, r *http.Request) string {
	var req refreshRequest
	if r.Body != nil && r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		_ = decodeInto(r, &req)
	}
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	if c, err := r.Cookie(common.RefreshTokenCookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Server) setTokenCookies(w http.ResponseWriter, pair *services.TokenPair) {
	http.SetCookie(w, s.cookie(common.AccessTokenCookieName, pair.AccessToken, s.accessTTL))
	http.SetCookie(w, s.cookie(common.RefreshTokenCookieName, pair.RefreshToken, s.refreshTTL))
}

func (s *Server) clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(common.AccessTokenCookieName, "", -1))
	http.SetCookie(w, s.cookie(common.RefreshTokenCookieName, "", -1))
}

func (s *Server) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}
