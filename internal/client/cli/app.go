package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/henkenclub/account/internal/client/client"
	"github.com/henkenclub/account/internal/client/config"
)

// accountAPI is the surface of the gRPC client the CLI commands use.
// Tests substitute a fake.
type accountAPI interface {
	Signup(ctx context.Context, email, alias, password, displayName string) (*client.Registration, error)
	ResendVerification(ctx context.Context, registerToken string) (*client.Registration, error)
	RegisterUser(ctx context.Context, registerToken, code string) (string, error)
	Signin(ctx context.Context, alias, email, password string) error
	Whoami(ctx context.Context) (*client.Account, error)
	Lookup(ctx context.Context, alias string) (*client.Account, error)
	IsAuthenticated() bool
	Close() error
}

type App struct {
	config *config.Config
	api    accountAPI
	reader *bufio.Reader

	// userName is shown in the prompt after a successful sign-in.
	userName string
	// registerToken is remembered between signup and verify so the user
	// does not have to paste it back in the same session.
	registerToken string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAccountClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}
