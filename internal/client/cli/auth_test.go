package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/henkenclub/account/internal/client/client"
	"github.com/henkenclub/account/internal/client/config"
)

// stubInputs replaces the interactive helpers with canned answers. Text
// prompts are answered in order; the password prompt always returns pw.
func stubInputs(t *testing.T, answers []string, pw []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected text prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAPI struct {
	signupEmail, signupAlias, signupPass, signupDisplay string
	signupReg                                           *client.Registration
	signupErr                                           error

	resendToken string
	resendReg   *client.Registration
	resendErr   error

	registerToken, registerCode string
	registerUserID              string
	registerErr                 error

	signinAlias, signinEmail, signinPass string
	signinErr                            error

	whoamiAcc *client.Account
	whoamiErr error

	lookupAlias string
	lookupAcc   *client.Account
	lookupErr   error

	authenticated bool
	closed        bool
}

func (f *fakeAPI) Signup(_ context.Context, email, alias, password, displayName string) (*client.Registration, error) {
	f.signupEmail, f.signupAlias, f.signupPass, f.signupDisplay = email, alias, password, displayName
	return f.signupReg, f.signupErr
}

func (f *fakeAPI) ResendVerification(_ context.Context, registerToken string) (*client.Registration, error) {
	f.resendToken = registerToken
	return f.resendReg, f.resendErr
}

func (f *fakeAPI) RegisterUser(_ context.Context, registerToken, code string) (string, error) {
	f.registerToken, f.registerCode = registerToken, code
	return f.registerUserID, f.registerErr
}

func (f *fakeAPI) Signin(_ context.Context, alias, email, password string) error {
	f.signinAlias, f.signinEmail, f.signinPass = alias, email, password
	return f.signinErr
}

func (f *fakeAPI) Whoami(_ context.Context) (*client.Account, error) {
	return f.whoamiAcc, f.whoamiErr
}

func (f *fakeAPI) Lookup(_ context.Context, alias string) (*client.Account, error) {
	f.lookupAlias = alias
	return f.lookupAcc, f.lookupErr
}

func (f *fakeAPI) IsAuthenticated() bool { return f.authenticated }
func (f *fakeAPI) Close() error          { f.closed = true; return nil }

func newTestApp(f *fakeAPI) *App {
	return &App{config: &config.Config{RequestTimeout: time.Second}, api: f}
}

func TestSignup_Success(t *testing.T) {
	f := &fakeAPI{signupReg: &client.Registration{
		RegisterToken: "tok-1",
		ExpiredAt:     time.Now().Add(30 * time.Minute),
	}}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice@example.org", "alice", "Alice"}, []byte("secret"))
	defer restore()

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.signupEmail != "alice@example.org" || f.signupAlias != "alice" || f.signupDisplay != "Alice" {
		t.Fatalf("signup args mismatch: %+v", f)
	}
	if f.signupPass != "secret" {
		t.Fatalf("signup pass mismatch: %q", f.signupPass)
	}
	if a.registerToken != "tok-1" {
		t.Fatalf("register token not remembered: %q", a.registerToken)
	}
}

func TestSignup_DuplicateIsNotFatal(t *testing.T) {
	f := &fakeAPI{signupErr: &client.DuplicateError{Email: true}}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice@example.org", "alice", ""}, []byte("secret"))
	defer restore()

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("duplicate should be reported, not returned: %v", err)
	}
	if a.registerToken != "" {
		t.Fatalf("no token should be remembered on duplicate")
	}
}

func TestVerify_UsesRememberedToken(t *testing.T) {
	f := &fakeAPI{registerUserID: "user-1"}
	a := newTestApp(f)
	a.registerToken = "tok-1"

	restore := stubInputs(t, []string{"", "123456"}, nil)
	defer restore()

	if err := a.Verify(context.Background()); err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if f.registerToken != "tok-1" || f.registerCode != "123456" {
		t.Fatalf("verify args mismatch: token=%q code=%q", f.registerToken, f.registerCode)
	}
	if a.registerToken != "" {
		t.Fatalf("token should be forgotten after promotion")
	}
}

func TestVerify_ExpiredPropagates(t *testing.T) {
	f := &fakeAPI{registerErr: client.ErrExpired}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"tok-2", "000000"}, nil)
	defer restore()

	if err := a.Verify(context.Background()); !errors.Is(err, client.ErrExpired) {
		t.Fatalf("want ErrExpired, got %v", err)
	}
}

func TestResend_RemembersRotatedRegistration(t *testing.T) {
	f := &fakeAPI{resendReg: &client.Registration{
		RegisterToken: "tok-1",
		ExpiredAt:     time.Now().Add(15 * time.Minute),
	}}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"tok-1"}, nil)
	defer restore()

	if err := a.Resend(context.Background()); err != nil {
		t.Fatalf("Resend err: %v", err)
	}
	if f.resendToken != "tok-1" {
		t.Fatalf("resend token mismatch: %q", f.resendToken)
	}
}

func TestSignin_AliasVsEmail(t *testing.T) {
	tests := []struct {
		name      string
		login     string
		wantAlias string
		wantEmail string
	}{
		{"alias", "alice", "alice", ""},
		{"email", "alice@example.org", "", "alice@example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{}
			a := newTestApp(f)

			restore := stubInputs(t, []string{tt.login}, []byte("secret"))
			defer restore()

			if err := a.Signin(context.Background()); err != nil {
				t.Fatalf("Signin err: %v", err)
			}
			if f.signinAlias != tt.wantAlias || f.signinEmail != tt.wantEmail {
				t.Fatalf("selector mismatch: alias=%q email=%q", f.signinAlias, f.signinEmail)
			}
			if f.signinPass != "secret" {
				t.Fatalf("pass mismatch: %q", f.signinPass)
			}
			if a.userName != tt.login {
				t.Fatalf("prompt name not set: %q", a.userName)
			}
		})
	}
}

func TestSignin_UnauthorizedPropagates(t *testing.T) {
	f := &fakeAPI{signinErr: client.ErrUnauthorized}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	if err := a.Signin(context.Background()); !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if a.userName != "" {
		t.Fatalf("prompt name should stay empty on failure")
	}
}
