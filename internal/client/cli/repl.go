package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/client/client"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. Commands get
// the words that followed the command name.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	ListSubjects(ctx context.Context, args []string) error
	AddSubject(ctx context.Context, args []string) error
	DeleteSubject(ctx context.Context, args []string) error
	ListNotes(ctx context.Context, args []string) error
	AddNote(ctx context.Context, args []string) error
	ShowNote(ctx context.Context, args []string) error
	EditNote(ctx context.Context, args []string) error
	DeleteNote(ctx context.Context, args []string) error
	PinNote(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Recent(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

type command func(execIface, context.Context, []string) error

var (
	guestCommands = map[string]command{
		"register": execIface.Register,
		"login":    execIface.Login,
	}

	userCommands = map[string]command{
		"logout":     execIface.Logout,
		"rename":     execIface.Rename,
		"dashboard":  execIface.Dashboard,
		"subjects":   execIface.ListSubjects,
		"addsubject": execIface.AddSubject,
		"delsubject": execIface.DeleteSubject,
		"notes":      execIface.ListNotes,
		"addnote":    execIface.AddNote,
		"show":       execIface.ShowNote,
		"editnote":   execIface.EditNote,
		"delnote":    execIface.DeleteNote,
		"pin":        execIface.PinNote,
		"search":     execIface.Search,
		"stats":      execIface.Stats,
		"recent":     execIface.Recent,
		"export":     execIface.Export,
	}
)

const (
	guestHelp = "Available commands: register, login, exit"
	userHelp  = "Available commands: dashboard, subjects, addsubject, delsubject <id>, notes <subject id>, " +
		"addnote <subject id>, show <id>, editnote <id>, delnote <id>, pin <id>, search <text>, stats, recent, " +
		"export <id> [archive], rename, logout, exit"
)

// runREPL reads commands from scanner until EOF or "exit"/"quit". Session
// commands require a login. Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("studyhub%s> ", prefixed(statusFn())))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		fn, ok := guestCommands[cmd]
		if !ok {
			if fn, ok = userCommands[cmd]; ok && !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
		}
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := fn(a, ctx, args); err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	}
	return err.Error()
}
