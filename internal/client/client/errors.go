package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int                 `json:"-"`
	Err     string              `json:"error"`
	Message string              `json:"message"`
	Fields  []common.FieldError `json:"fields"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else if e.Err != "" {
		b.WriteString(e.Err)
	} else {
		b.WriteString(http.StatusText(e.Status))
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s %s", f.Field, f.Message)
	}
	return b.String()
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

func (e *APIError) tokenExpired() bool {
	return e.Status == http.StatusUnauthorized && e.Message == "token expired"
}
