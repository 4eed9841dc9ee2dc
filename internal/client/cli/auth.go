package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/common"
)

// Login prompts for the email/password pair and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
		} else {
			printlnFn("Login failed:", err)
		}
		return err
	}

	printlnFn("Logged in")
	if token, err := a.store.Load(ctx, credentials.KindAccessToken); err == nil {
		if exp, err := credentials.TokenExpiry(token); err == nil {
			printlnFn("Session expires at", exp.Local().Format(time.RFC822))
		}
	}
	return nil
}

// Signup collects the registration form, including an optional profile image
// read from a local path.
func (a *App) Signup(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	nickname, err := GetSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}
	intro, err := GetSimpleText(a.reader, "Enter introduction (optional)", os.Stdout)
	if err != nil {
		return err
	}

	form := api.SignupForm{
		Email:        email,
		Password:     string(password),
		Nickname:     nickname,
		Introduction: intro,
	}

	imagePath, err := GetSimpleText(a.reader, "Enter profile image path (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if imagePath != "" {
		part, err := readFilePart("profileImage", imagePath)
		if err != nil {
			printlnFn("Cannot read image:", err)
			return err
		}
		form.ProfileImage = part
	}

	if err := a.auth.Signup(ctx, form); err != nil {
		printlnFn("Signup failed:", err)
		return err
	}
	printlnFn("Account created, you can log in now")
	return nil
}

// Logout drops the session. Local credentials are wiped even when the server
// is unreachable.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Deactivate permanently closes the account after an explicit confirmation.
func (a *App) Deactivate(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "This permanently deletes your account. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}
	if err := a.auth.Deactivate(ctx); err != nil {
		printlnFn("Deactivation failed:", err)
		return err
	}
	printlnFn("Account deactivated")
	return nil
}
