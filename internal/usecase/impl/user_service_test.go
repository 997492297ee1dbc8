package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	mockRepo "yatai/internal/mocks/repository"
	mockService "yatai/internal/mocks/service"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestUserService_Login_ExistingUser(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()
	existing := &entity.User{
		ID:         uuid.New(),
		LineUserID: "U1234567890abcdef",
		Role:       entity.RoleStore,
	}

	mockIdentity.EXPECT().
		VerifyIDToken(ctx, "line-id-token").
		Return(&service.IdentityToken{LineUserID: existing.LineUserID, DisplayName: "Takoyaki Taro"}, nil)

	mockUserRepo.EXPECT().
		FindByLineUserID(ctx, existing.LineUserID).
		Return(existing, nil)

	mockToken.EXPECT().
		GenerateAccessToken(existing.ID, entity.RoleStore).
		Return("signed-access-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{IDToken: "line-id-token", Role: "store"})
	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
	assert.Equal(t, "signed-access-token", output.AccessToken)
	assert.False(t, output.NewUser)
}

func TestUserService_Login_NewUserRegistered(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()
	lineUserID := "Unewcomer0000000001"

	mockIdentity.EXPECT().
		VerifyIDToken(ctx, "line-id-token").
		Return(&service.IdentityToken{LineUserID: lineUserID, DisplayName: "Festival Hanako"}, nil)

	mockUserRepo.EXPECT().
		FindByLineUserID(ctx, lineUserID).
		Return(nil, repository.ErrUserNotFound)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

	var createdUser *entity.User
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			createdUser = user

			return nil
		})
	txProfileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
			assert.Equal(t, entity.RoleOrganizer, profile.Role)
			assert.Equal(t, entity.VerificationNotSubmitted, profile.VerificationStatus)

			return nil
		})

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mockToken.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleOrganizer).
		Return("signed-access-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{IDToken: "line-id-token", Role: "organizer"})
	require.NoError(t, err)
	require.NotNil(t, createdUser)
	assert.True(t, output.NewUser)
	assert.Equal(t, lineUserID, output.User.LineUserID)
	assert.Equal(t, entity.RoleOrganizer, output.User.Role)
	assert.Equal(t, "Festival Hanako", output.User.DisplayName)
}

func TestUserService_Login_RoleMismatch(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()
	existing := &entity.User{
		ID:         uuid.New(),
		LineUserID: "U1234567890abcdef",
		Role:       entity.RoleStore,
	}

	mockIdentity.EXPECT().
		VerifyIDToken(ctx, "line-id-token").
		Return(&service.IdentityToken{LineUserID: existing.LineUserID}, nil)

	mockUserRepo.EXPECT().
		FindByLineUserID(ctx, existing.LineUserID).
		Return(existing, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{IDToken: "line-id-token", Role: "organizer"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRoleMismatch)
}

func TestUserService_Login_InvalidRole(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	output, err := svc.Login(context.Background(), &usecase.LoginInput{IDToken: "line-id-token", Role: "admin"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_InvalidIDToken(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()

	mockIdentity.EXPECT().
		VerifyIDToken(ctx, "expired-token").
		Return(nil, domainerrors.ErrIdentityTokenInvalid)

	output, err := svc.Login(ctx, &usecase.LoginInput{IDToken: "expired-token", Role: "store"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()
	id := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, id.String())
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUser_InvalidID(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	user, err := svc.GetUser(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_RegistrationRolledBack(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockIdentity := mockService.NewMockIdentityProvider(t)
	mockToken := mockService.NewMockTokenService(t)
	svc := NewUserService(mockTx, mockUserRepo, mockIdentity, mockToken, newTestLogger())

	ctx := context.Background()
	lineUserID := "Unewcomer0000000002"

	mockIdentity.EXPECT().
		VerifyIDToken(ctx, "line-id-token").
		Return(&service.IdentityToken{LineUserID: lineUserID}, nil)

	mockUserRepo.EXPECT().
		FindByLineUserID(ctx, lineUserID).
		Return(nil, repository.ErrUserNotFound)

	txErr := errors.New("connection reset")
	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	output, err := svc.Login(ctx, &usecase.LoginInput{IDToken: "line-id-token", Role: "store"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, txErr)
}
