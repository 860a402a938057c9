// Package client wraps the account gRPC API for CLI use. It keeps the
// issued token pair in memory and transparently refreshes an expired access
// token before retrying a failed call.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/henkenclub/account/internal/common"
	pb "github.com/henkenclub/account/internal/proto"
)

// Account is the client-side view of a registered user.
type Account struct {
	ID          string
	Email       string
	Alias       string
	DisplayName string
}

// Registration describes a pending signup: the token to present later and
// the deadline for doing so. The verification code itself travels by email.
type Registration struct {
	RegisterToken string
	ExpiredAt     time.Time
}

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.AccountServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.GetTokens().GetAccessToken()
		s.refreshToken = refreshTokenResponse.GetTokens().GetRefreshToken()

		// tokens refreshed, retry with the new access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewAccountClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.initGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	return nil
}

// Signup starts a registration. A *DuplicateError is returned when the email
// or alias already belongs to an account.
func (s *GRPCClient) Signup(ctx context.Context, email, alias, password, displayName string) (*Registration, error) {

	req := &pb.SignupRequest{Email: email, Alias: alias, Password: password, DisplayName: displayName}

	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if details := resp.GetErrorDetails(); len(details) > 0 {
		dup := &DuplicateError{}
		for _, d := range details {
			switch d {
			case pb.SignupErrorDetail_DUPLICATED_EMAIL:
				dup.Email = true
			case pb.SignupErrorDetail_DUPLICATED_ALIAS:
				dup.Alias = true
			}
		}
		return nil, dup
	}

	reg := resp.GetRegistration()
	return &Registration{
		RegisterToken: reg.GetRegisterToken(),
		ExpiredAt:     reg.GetExpiredAt().AsTime(),
	}, nil

}

// ResendVerification asks the server to email a fresh code for a pending
// registration.
func (s *GRPCClient) ResendVerification(ctx context.Context, registerToken string) (*Registration, error) {

	req := &pb.ResendVerificationEmailRequest{RegisterToken: registerToken}

	resp, err := s.client.ResendVerificationEmail(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	reg := resp.GetRegistration()
	return &Registration{
		RegisterToken: reg.GetRegisterToken(),
		ExpiredAt:     reg.GetExpiredAt().AsTime(),
	}, nil

}

// RegisterUser completes a registration with the emailed code. On success the
// returned token pair is retained for subsequent authenticated calls.
func (s *GRPCClient) RegisterUser(ctx context.Context, registerToken, code string) (string, error) {

	req := &pb.RegisterUserRequest{RegisterToken: registerToken, VerificationCode: code}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.GetTokens().GetAccessToken()
	s.refreshToken = resp.GetTokens().GetRefreshToken()

	return resp.GetUserId(), nil

}

// Signin authenticates with an alias or email plus password and retains the
// issued token pair.
func (s *GRPCClient) Signin(ctx context.Context, alias, email, password string) error {

	req := &pb.SigninRequest{Alias: alias, Email: email, Password: password}

	resp, err := s.client.Signin(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.GetTokens().GetAccessToken()
	s.refreshToken = resp.GetTokens().GetRefreshToken()

	return nil

}

// Whoami fetches the account behind the current access token.
func (s *GRPCClient) Whoami(ctx context.Context) (*Account, error) {
	return s.getUser(ctx, &pb.GetUserRequest{})
}

// Lookup fetches an account by alias.
func (s *GRPCClient) Lookup(ctx context.Context, alias string) (*Account, error) {
	return s.getUser(ctx, &pb.GetUserRequest{Alias: alias})
}

func (s *GRPCClient) getUser(ctx context.Context, req *pb.GetUserRequest) (*Account, error) {

	resp, err := s.client.GetUser(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	u := resp.GetUser()
	return &Account{
		ID:          u.GetId(),
		Email:       u.GetEmail(),
		Alias:       u.GetAlias(),
		DisplayName: u.GetDisplayName(),
	}, nil

}

// IsAuthenticated reports whether a token pair is currently held.
func (s *GRPCClient) IsAuthenticated() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.FailedPrecondition:
		return ErrExpired
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
