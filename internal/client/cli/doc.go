// Package cli provides the interactive StudyHub command-line client.
//
// It wires configuration, the HTTP API client and a read-eval-print loop.
// Typical flow: log in, list subjects, drill into a subject's notes, and
// add, edit, pin or export notes. Passwords are read without echo.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
