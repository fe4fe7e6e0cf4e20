// Package client is the HTTP client for the StudyHub API used by the CLI.
//
// APIClient keeps the token pair issued at login in memory, sends the
// access token as a bearer header and, when the server reports an expired
// access token, refreshes the pair once and retries the request.
//
// Transport failures are reported as ErrUnavailable. Non-2xx answers are
// returned as *APIError, which also matches ErrUnauthorized or ErrNotFound
// through errors.Is for 401 and 404.
package client
