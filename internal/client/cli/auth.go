package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/henkenclub/account/internal/client/client"
	"github.com/henkenclub/account/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// callCtx bounds a single RPC with the configured request timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// Signup prompts for the new account's email, alias, display name and
// password and starts a registration. On success it prints the register
// token and the verification deadline and remembers the token for a
// follow-up "verify" in the same session.
//
// The password byte slice is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	alias, err := getSimpleText(a.reader, "Enter alias", os.Stdout)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name (empty to reuse alias)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	reg, err := a.api.Signup(callCtx, email, alias, string(password), displayName)
	if err != nil {
		var dup *client.DuplicateError
		if errors.As(err, &dup) {
			log.Printf("Signup rejected: %s", dup.Error())
			return nil
		}
		log.Printf("Signup unsuccessfull: %s", err.Error())
		return err
	}

	a.registerToken = reg.RegisterToken
	fmt.Println("A verification code has been sent to", email)
	fmt.Println("Register token:", reg.RegisterToken)
	fmt.Println("Verify before:", reg.ExpiredAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// Verify prompts for the register token (defaulting to the one remembered
// from signup) and the emailed code, and completes the registration.
func (a *App) Verify(ctx context.Context) error {
	token, err := a.promptRegisterToken()
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	userID, err := a.api.RegisterUser(callCtx, token, code)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrExpired):
			log.Printf("Registration expired, please sign up again")
		case errors.Is(err, client.ErrUnauthorized):
			log.Printf("Invalid token or code")
		default:
			log.Printf("Verification unsuccessfull: %s", err.Error())
		}
		return err
	}

	a.registerToken = ""
	fmt.Println("Success! User id:", userID)
	fmt.Println("You are now signed in.")
	return nil
}

// Resend rotates the verification code for a pending registration and
// sends a fresh email. The register token stays valid.
func (a *App) Resend(ctx context.Context) error {
	token, err := a.promptRegisterToken()
	if err != nil {
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	reg, err := a.api.ResendVerification(callCtx, token)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			log.Printf("No pending registration for this token")
		} else {
			log.Printf("Resend unsuccessfull: %s", err.Error())
		}
		return err
	}

	a.registerToken = reg.RegisterToken
	fmt.Println("A new verification code has been sent.")
	fmt.Println("Verify before:", reg.ExpiredAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// Signin prompts for an alias or email plus password and authenticates.
// Input containing '@' is treated as an email, anything else as an alias.
func (a *App) Signin(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter alias or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	alias, email := splitLogin(login)

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.Signin(callCtx, alias, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			log.Printf("Invalid credentials")
		} else {
			log.Printf("Signin unsuccessfull: %s", err.Error())
		}
		return err
	}

	a.userName = login
	log.Printf("Signin successfull")
	return nil
}

func (a *App) promptRegisterToken() (string, error) {
	prompt := "Enter register token"
	if a.registerToken != "" {
		prompt = "Enter register token (empty to reuse the one from signup)"
	}
	token, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if token == "" {
		token = a.registerToken
	}
	return token, nil
}
