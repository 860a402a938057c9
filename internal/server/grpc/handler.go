package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/henkenclub/account/internal/common"
	pb "github.com/henkenclub/account/internal/proto"
	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/users"
	"github.com/henkenclub/account/internal/server/services"
)

func registrationToProto(p *services.RegistrationPair) *pb.RegistrationPair {
	return &pb.RegistrationPair{
		VerificationCode: p.Code,
		RegisterToken:    p.Token,
		ExpiredAt:        timestamppb.New(p.ExpiredAt),
	}
}

func tokenPairToProto(p *services.TokenPair) *pb.TokenPair {
	return &pb.TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func userToProto(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Email: u.Email, Alias: u.Alias, DisplayName: u.DisplayName}
}

// duplicate details are reported email first, then alias
func duplicateDetails(c services.DuplicateCheck) []pb.SignupErrorDetail {
	var details []pb.SignupErrorDetail
	if c.EmailDuplicated {
		details = append(details, pb.SignupErrorDetail_DUPLICATED_EMAIL)
	}
	if c.AliasDuplicated {
		details = append(details, pb.SignupErrorDetail_DUPLICATED_ALIAS)
	}
	return details
}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {

	s.logger.Info(ctx, "Signup request", "alias", req.GetAlias())

	pair, err := s.signup.BeginRegistration(ctx, req.GetEmail(), req.GetAlias(), req.GetPassword(), req.GetDisplayName())

	if err != nil {
		var dup *services.DuplicateError
		if errors.As(err, &dup) {
			return &pb.SignupResponse{ErrorDetails: duplicateDetails(dup.Check)}, nil
		}
		if errors.Is(err, common.ErrorValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignupResponse{Registration: registrationToProto(pair)}, nil

}

func (s *GRPCServer) ResendVerificationEmail(ctx context.Context, req *pb.ResendVerificationEmailRequest) (*pb.ResendVerificationEmailResponse, error) {

	pair, err := s.signup.ResendVerification(ctx, req.GetRegisterToken())

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "registration not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ResendVerificationEmailResponse{Registration: registrationToProto(pair)}, nil

}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	userID, err := s.signup.VerifyAndPromote(ctx, req.GetRegisterToken(), req.GetVerificationCode())

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidCredentials):
			return nil, status.Error(codes.Unauthenticated, "invalid token or code")
		case errors.Is(err, common.ErrRegistrationExpired):
			return nil, status.Error(codes.FailedPrecondition, "registration expired")
		case errors.Is(err, common.ErrorDuplicate):
			return nil, status.Error(codes.AlreadyExists, "email or alias already taken")
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	tokens, err := s.tokens.IssuePair(userID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "user_id", userID)
	return &pb.RegisterUserResponse{UserId: userID, Tokens: tokenPairToProto(tokens)}, nil

}

// signinSelector picks the lookup key for a sign-in request. Exactly one of
// alias and email must be set.
func signinSelector(req *pb.SigninRequest) (users.Selector, error) {
	alias, email := req.GetAlias(), req.GetEmail()
	switch {
	case alias != "" && email != "":
		return users.Selector{}, status.Error(codes.InvalidArgument, "provide either alias or email, not both")
	case alias != "":
		return users.ByAlias(alias), nil
	case email != "":
		return users.ByEmail(email), nil
	default:
		return users.Selector{}, status.Error(codes.InvalidArgument, "alias or email is required")
	}
}

func (s *GRPCServer) Signin(ctx context.Context, req *pb.SigninRequest) (*pb.SigninResponse, error) {

	sel, err := signinSelector(req)
	if err != nil {
		return nil, err
	}

	tokens, err := s.signin.Signin(ctx, sel, req.GetPassword())

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SigninResponse{Tokens: tokenPairToProto(tokens)}, nil

}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {

	userID, err := s.tokens.VerifyAccessToken(req.GetAccessToken())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return &pb.VerifyTokenResponse{UserId: userID}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.tokens.Refresh(req.GetRefreshToken())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	return &pb.RefreshTokenResponse{Tokens: tokenPairToProto(tokens)}, nil

}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	var sel users.Selector
	switch {
	case req.GetId() != "":
		sel = users.ByID(req.GetId())
	case req.GetAlias() != "":
		sel = users.ByAlias(req.GetAlias())
	case req.GetEmail() != "":
		sel = users.ByEmail(req.GetEmail())
	default:
		// no selector: the authenticated caller asks about itself
		userID, ok := UserIDFromContext(ctx)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "id, alias or email is required")
		}
		sel = users.ByID(userID)
	}

	user, err := s.accounts.GetUser(ctx, sel)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetUserResponse{User: userToProto(user)}, nil

}
