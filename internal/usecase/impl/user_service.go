// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	"yatai/internal/errors"
	"yatai/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	identity  service.IdentityProvider
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	identity service.IdentityProvider,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		identity:  identity,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Login verifies the LINE ID token, finds or creates the user, and mints an
// app session token. The role is fixed at account creation; logging into an
// existing account under the other role is rejected.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + input.Role)
	}

	token, err := s.identity.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByLineUserID(ctx, token.LineUserID)
	newUser := false
	switch {
	case err == nil:
		if user.Role != role {
			return nil, domainerrors.ErrRoleMismatch
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = s.registerUser(ctx, token, role)
		if err != nil {
			return nil, err
		}
		newUser = true
	default:
		return nil, errors.Wrap(err, "failed to find user by LINE id")
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		User:        user,
		AccessToken: accessToken,
		NewUser:     newUser,
	}, nil
}

// registerUser creates the user and its empty profile in one transaction so
// a half-registered account can never be observed.
func (s *userService) registerUser(ctx context.Context, token *service.IdentityToken, role entity.Role) (*entity.User, error) {
	user := &entity.User{
		ID:          uuid.New(),
		LineUserID:  token.LineUserID,
		Role:        role,
		DisplayName: token.DisplayName,
		PictureURL:  token.PictureURL,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile := &entity.Profile{
			ID:                 uuid.New(),
			UserID:             user.ID,
			Role:               role,
			Name:               token.DisplayName,
			VerificationStatus: entity.VerificationNotSubmitted,
		}

		return errors.Wrap(factory.NewProfileRepository().Create(ctx, profile), "failed to create profile")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("registered new user",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()),
	)

	return user, nil
}

// GetUser retrieves a user by id.
func (s *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
