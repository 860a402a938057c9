package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/henkenclub/account/internal/common"
	pb "github.com/henkenclub/account/internal/proto"
	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/users"
	"github.com/henkenclub/account/internal/server/services"
)

// ---- fakes ----

type fakeSignup struct {
	beginResp *services.RegistrationPair
	beginErr  error

	resendResp *services.RegistrationPair
	resendErr  error

	promoteID  string
	promoteErr error
}

func (f *fakeSignup) BeginRegistration(ctx context.Context, email, alias, password, displayName string) (*services.RegistrationPair, error) {
	return f.beginResp, f.beginErr
}
func (f *fakeSignup) ResendVerification(ctx context.Context, token string) (*services.RegistrationPair, error) {
	return f.resendResp, f.resendErr
}
func (f *fakeSignup) VerifyAndPromote(ctx context.Context, token string, code string) (string, error) {
	return f.promoteID, f.promoteErr
}

type fakeSignin struct {
	sel  users.Selector
	resp *services.TokenPair
	err  error
}

func (f *fakeSignin) Signin(ctx context.Context, sel users.Selector, password string) (*services.TokenPair, error) {
	f.sel = sel
	return f.resp, f.err
}

type fakeAccounts struct {
	sel  users.Selector
	resp *models.User
	err  error
}

func (f *fakeAccounts) GetUser(ctx context.Context, sel users.Selector) (*models.User, error) {
	f.sel = sel
	return f.resp, f.err
}

type fakeTokens struct {
	pairResp *services.TokenPair
	pairErr  error

	verifyID  string
	verifyErr error

	refreshResp *services.TokenPair
	refreshErr  error
}

func (f *fakeTokens) IssuePair(userID string) (*services.TokenPair, error) {
	return f.pairResp, f.pairErr
}
func (f *fakeTokens) VerifyAccessToken(token string) (string, error) {
	return f.verifyID, f.verifyErr
}
func (f *fakeTokens) Refresh(refreshToken string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

// ---- helpers ----

func newServer(su signupSvc, si signinSvc, ac accountSvc, tk tokenSvc) *GRPCServer {
	return &GRPCServer{
		address:  "127.0.0.1:0",
		signup:   su,
		signin:   si,
		accounts: ac,
		tokens:   tk,
		logger:   nopLogger{},
	}
}

// ---- tests ----

func TestSignup_OK(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	su := &fakeSignup{beginResp: &services.RegistrationPair{Code: "c", Token: "t", ExpiredAt: exp}}
	s := newServer(su, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})

	resp, err := s.Signup(context.Background(), &pb.SignupRequest{Email: "a@b.c", Alias: "a", Password: "p"})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	reg := resp.GetRegistration()
	if reg.GetVerificationCode() != "c" || reg.GetRegisterToken() != "t" {
		t.Fatalf("unexpected registration: %+v", reg)
	}
	if !reg.GetExpiredAt().AsTime().Equal(exp) {
		t.Fatalf("unexpected expiry: %v", reg.GetExpiredAt().AsTime())
	}
	if len(resp.GetErrorDetails()) != 0 {
		t.Fatalf("unexpected details: %v", resp.GetErrorDetails())
	}
}

func TestSignup_DuplicateDetails(t *testing.T) {
	tests := []struct {
		name  string
		check services.DuplicateCheck
		want  []pb.SignupErrorDetail
	}{
		{"email", services.DuplicateCheck{EmailDuplicated: true},
			[]pb.SignupErrorDetail{pb.SignupErrorDetail_DUPLICATED_EMAIL}},
		{"alias", services.DuplicateCheck{AliasDuplicated: true},
			[]pb.SignupErrorDetail{pb.SignupErrorDetail_DUPLICATED_ALIAS}},
		{"both email first", services.DuplicateCheck{EmailDuplicated: true, AliasDuplicated: true},
			[]pb.SignupErrorDetail{pb.SignupErrorDetail_DUPLICATED_EMAIL, pb.SignupErrorDetail_DUPLICATED_ALIAS}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			su := &fakeSignup{beginErr: &services.DuplicateError{Check: tt.check}}
			s := newServer(su, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})

			resp, err := s.Signup(context.Background(), &pb.SignupRequest{Email: "a@b.c", Alias: "a", Password: "p"})
			if err != nil {
				t.Fatalf("duplicates travel in the response, not as a status: %v", err)
			}
			got := resp.GetErrorDetails()
			if len(got) != len(tt.want) {
				t.Fatalf("details: got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("details: got %v want %v", got, tt.want)
				}
			}
			if resp.GetRegistration() != nil {
				t.Fatalf("no registration on duplicate")
			}
		})
	}
}

func TestSignup_ValidationAndInternal(t *testing.T) {
	s := newServer(&fakeSignup{beginErr: common.ErrorValidation}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})
	_, err := s.Signup(context.Background(), &pb.SignupRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}

	s2 := newServer(&fakeSignup{beginErr: errors.New("boom")}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})
	_, err = s2.Signup(context.Background(), &pb.SignupRequest{Email: "a@b.c", Alias: "a", Password: "p"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestResendVerificationEmail_OK(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	su := &fakeSignup{resendResp: &services.RegistrationPair{Code: "c2", Token: "t", ExpiredAt: exp}}
	s := newServer(su, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})

	resp, err := s.ResendVerificationEmail(context.Background(), &pb.ResendVerificationEmailRequest{RegisterToken: "t"})
	if err != nil {
		t.Fatalf("ResendVerificationEmail error: %v", err)
	}
	if resp.GetRegistration().GetVerificationCode() != "c2" {
		t.Fatalf("unexpected registration: %+v", resp.GetRegistration())
	}
}

func TestResendVerificationEmail_NotFound(t *testing.T) {
	su := &fakeSignup{resendErr: common.ErrorNotFound}
	s := newServer(su, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})

	_, err := s.ResendVerificationEmail(context.Background(), &pb.ResendVerificationEmailRequest{RegisterToken: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestRegisterUser_OK(t *testing.T) {
	su := &fakeSignup{promoteID: "u1"}
	tk := &fakeTokens{pairResp: &services.TokenPair{AccessToken: "A", RefreshToken: "R"}}
	s := newServer(su, &fakeSignin{}, &fakeAccounts{}, tk)

	resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{
		RegisterToken: "t", VerificationCode: "c",
	})
	if err != nil {
		t.Fatalf("RegisterUser error: %v", err)
	}
	if resp.GetUserId() != "u1" {
		t.Fatalf("unexpected user id: %q", resp.GetUserId())
	}
	if resp.GetTokens().GetAccessToken() != "A" || resp.GetTokens().GetRefreshToken() != "R" {
		t.Fatalf("unexpected tokens: %+v", resp.GetTokens())
	}
}

func TestRegisterUser_FaultMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid pair", common.ErrorInvalidCredentials, codes.Unauthenticated},
		{"expired", common.ErrRegistrationExpired, codes.FailedPrecondition},
		{"lost race", common.ErrorDuplicate, codes.AlreadyExists},
		{"internal", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(&fakeSignup{promoteErr: tt.err}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})
			_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{RegisterToken: "t", VerificationCode: "c"})
			if status.Code(err) != tt.want {
				t.Fatalf("want %v, got %v (err=%v)", tt.want, status.Code(err), err)
			}
		})
	}
}

func TestSignin_OK(t *testing.T) {
	si := &fakeSignin{resp: &services.TokenPair{AccessToken: "A", RefreshToken: "R"}}
	s := newServer(&fakeSignup{}, si, &fakeAccounts{}, &fakeTokens{})

	resp, err := s.Signin(context.Background(), &pb.SigninRequest{Alias: "a", Password: "p"})
	if err != nil {
		t.Fatalf("Signin error: %v", err)
	}
	if resp.GetTokens().GetAccessToken() != "A" {
		t.Fatalf("unexpected tokens: %+v", resp.GetTokens())
	}
	if si.sel.Kind != users.SelectByAlias {
		t.Fatalf("selector: %+v", si.sel)
	}
}

func TestSignin_SelectorValidation(t *testing.T) {
	s := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{})

	_, err := s.Signin(context.Background(), &pb.SigninRequest{Password: "p"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("no selector: want InvalidArgument, got %v", status.Code(err))
	}

	_, err = s.Signin(context.Background(), &pb.SigninRequest{Alias: "a", Email: "a@b.c", Password: "p"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("both selectors: want InvalidArgument, got %v", status.Code(err))
	}
}

func TestSignin_FaultMapping(t *testing.T) {
	s := newServer(&fakeSignup{}, &fakeSignin{err: common.ErrorNotFound}, &fakeAccounts{}, &fakeTokens{})
	_, err := s.Signin(context.Background(), &pb.SigninRequest{Alias: "ghost", Password: "p"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}

	s2 := newServer(&fakeSignup{}, &fakeSignin{err: common.ErrorInvalidCredentials}, &fakeAccounts{}, &fakeTokens{})
	_, err = s2.Signin(context.Background(), &pb.SigninRequest{Alias: "a", Password: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestVerifyToken(t *testing.T) {
	s := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{verifyID: "u1"})
	resp, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{AccessToken: "tok"})
	if err != nil || resp.GetUserId() != "u1" {
		t.Fatalf("VerifyToken: resp=%+v err=%v", resp, err)
	}

	s2 := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{verifyErr: common.ErrInvalidToken})
	_, err = s2.VerifyToken(context.Background(), &pb.VerifyTokenRequest{AccessToken: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestRefreshToken(t *testing.T) {
	tk := &fakeTokens{refreshResp: &services.TokenPair{AccessToken: "A2", RefreshToken: "R2"}}
	s := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{}, tk)
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r"})
	if err != nil || resp.GetTokens().GetAccessToken() != "A2" {
		t.Fatalf("RefreshToken: resp=%+v err=%v", resp, err)
	}

	s2 := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{}, &fakeTokens{refreshErr: common.ErrTokenExpired})
	_, err = s2.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "old"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestGetUser_BySelector(t *testing.T) {
	ac := &fakeAccounts{resp: &models.User{ID: "u1", Email: "a@b.c", Alias: "a", DisplayName: "A"}}
	s := newServer(&fakeSignup{}, &fakeSignin{}, ac, &fakeTokens{})

	resp, err := s.GetUser(context.Background(), &pb.GetUserRequest{Alias: "a"})
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if resp.GetUser().GetId() != "u1" || resp.GetUser().GetAlias() != "a" {
		t.Fatalf("unexpected user: %+v", resp.GetUser())
	}
	if ac.sel.Kind != users.SelectByAlias {
		t.Fatalf("selector: %+v", ac.sel)
	}
}

func TestGetUser_SelfFromContext(t *testing.T) {
	ac := &fakeAccounts{resp: &models.User{ID: "u9"}}
	s := newServer(&fakeSignup{}, &fakeSignin{}, ac, &fakeTokens{})

	ctx := context.WithValue(context.Background(), userIDKey, "u9")
	resp, err := s.GetUser(ctx, &pb.GetUserRequest{})
	if err != nil || resp.GetUser().GetId() != "u9" {
		t.Fatalf("self lookup: resp=%+v err=%v", resp, err)
	}
	if ac.sel.Kind != users.SelectByID || ac.sel.Value != "u9" {
		t.Fatalf("selector: %+v", ac.sel)
	}

	// unauthenticated and no selector
	_, err = s.GetUser(context.Background(), &pb.GetUserRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newServer(&fakeSignup{}, &fakeSignin{}, &fakeAccounts{err: common.ErrorNotFound}, &fakeTokens{})
	_, err := s.GetUser(context.Background(), &pb.GetUserRequest{Id: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}
