package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for a username, email and password (twice) and creates
// an account. It does not log in.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	u, err := a.api.Register(ctx, models.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return err
	}

	printlnFn("Registered as", u.Username+". You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Login(ctx, models.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.userName = u.Username
	printlnFn("Welcome back,", u.Username)
	return nil
}

// Logout revokes the session. Local state is cleared even when the server
// cannot be reached.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.api.Logout(ctx)
	a.userName = ""
	if err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Rename changes the username, taken from args or prompted for.
func (a *App) Rename(ctx context.Context, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = getSimpleText(a.reader, "Enter new username", os.Stdout); err != nil {
			return err
		}
	}

	u, err := a.api.UpdateUsername(ctx, username)
	if err != nil {
		return err
	}
	a.userName = u.Username
	printlnFn("Username changed to", u.Username)
	return nil
}
