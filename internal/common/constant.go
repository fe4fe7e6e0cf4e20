// Package common contains shared constants and sentinel errors used across
// StudyHub components.
package common

const (
	// AccessTokenCookieName is the cookie carrying the access token for
	// browser clients. API clients send it as a Bearer token instead.
	AccessTokenCookieName = "access_token"

	// RefreshTokenCookieName is the cookie carrying the refresh token.
	RefreshTokenCookieName = "refresh_token"

	// AuthorizationHeaderName is the header carrying "Bearer <token>".
	AuthorizationHeaderName = "Authorization"

	// DefaultSubjectColor is applied when a subject is saved without a color.
	DefaultSubjectColor = "#0d6efd"

	// RecentNotesLimit is the size of the recent notes view.
	RecentNotesLimit = 5
)
