package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/henkenclub/account/internal/client/client"
)

// Whoami fetches and prints the signed-in user's own profile.
func (a *App) Whoami(ctx context.Context) error {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	acc, err := a.api.Whoami(callCtx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			log.Printf("Not signed in")
		} else {
			log.Printf("Whoami unsuccessfull: %s", err.Error())
		}
		return err
	}

	a.userName = acc.Alias
	printAccount(acc)
	return nil
}

// Lookup prompts for an alias and prints the matching user's profile.
func (a *App) Lookup(ctx context.Context) error {
	alias, err := getSimpleText(a.reader, "Enter alias", os.Stdout)
	if err != nil {
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	acc, err := a.api.Lookup(callCtx, alias)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			log.Printf("No user with alias %q", alias)
		} else {
			log.Printf("Lookup unsuccessfull: %s", err.Error())
		}
		return err
	}

	printAccount(acc)
	return nil
}

func printAccount(acc *client.Account) {
	fmt.Println("id:          ", acc.ID)
	fmt.Println("email:       ", acc.Email)
	fmt.Println("alias:       ", acc.Alias)
	fmt.Println("display name:", acc.DisplayName)
}
