// Package grpc is the wire-facing layer of the account server. It maps
// service outcomes onto gRPC status codes and keeps no business logic of
// its own.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/henkenclub/account/internal/logging"
	pb "github.com/henkenclub/account/internal/proto"
	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/users"
	"github.com/henkenclub/account/internal/server/services"
)

type signupSvc interface {
	BeginRegistration(ctx context.Context, email, alias, password, displayName string) (*services.RegistrationPair, error)
	ResendVerification(ctx context.Context, token string) (*services.RegistrationPair, error)
	VerifyAndPromote(ctx context.Context, token string, code string) (string, error)
}

type signinSvc interface {
	Signin(ctx context.Context, sel users.Selector, password string) (*services.TokenPair, error)
}

type accountSvc interface {
	GetUser(ctx context.Context, sel users.Selector) (*models.User, error)
}

type tokenSvc interface {
	IssuePair(userID string) (*services.TokenPair, error)
	VerifyAccessToken(token string) (string, error)
	Refresh(refreshToken string) (*services.TokenPair, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address  string
	signup   signupSvc
	signin   signinSvc
	accounts accountSvc
	tokens   tokenSvc
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, signup *services.SignupService,
	signin *services.SigninService, accounts *services.AccountService,
	tokens *services.TokenService) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		signup:   signup,
		signin:   signin,
		accounts: accounts,
		tokens:   tokens,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterAccountServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
