package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yatai/config"
	"yatai/internal/delivery/http/middleware"
	"yatai/internal/delivery/http/router/handler"
	"yatai/internal/delivery/http/validator"
	"yatai/internal/domain/entity"
	"yatai/internal/infra/auth"
	mockUsecase "yatai/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newVerificationTestServer wires the real router and auth middleware around
// a mocked profile usecase, so requests travel the same path they do in
// production.
func newVerificationTestServer(t *testing.T, profileUC *mockUsecase.MockProfileUsecase) (*echo.Echo, func(entity.Role) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	r := NewRouter(RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{Logger: logger}),
		ProfileHandler:     handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profileUC, Logger: logger}),
		EventHandler:       handler.NewEventHandler(handler.EventHandlerParams{ProfileUC: profileUC, Logger: logger}),
		ApplicationHandler: handler.NewApplicationHandler(handler.ApplicationHandlerParams{ProfileUC: profileUC, Logger: logger}),
		DocumentHandler:    handler.NewDocumentHandler(handler.DocumentHandlerParams{ProfileUC: profileUC, Logger: logger}),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokenSvc, cfg),
	})
	r.RegisterRoutes(e)

	mint := func(role entity.Role) string {
		token, err := tokenSvc.GenerateAccessToken(uuid.New(), role)
		require.NoError(t, err)

		return token
	}

	return e, mint
}

func decideVerificationRequest(profileID uuid.UUID, token string) *http.Request {
	req := httptest.NewRequest(
		http.MethodPost,
		"/profiles/"+profileID.String()+"/verification/decision",
		strings.NewReader(`{"outcome":"approve"}`),
	)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	return req
}

func TestRouter_DecideVerification_StoreForbidden(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	e, mint := newVerificationTestServer(t, profileUC)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, decideVerificationRequest(uuid.New(), mint(entity.RoleStore)))

	// A store must never reach the decision usecase; the mock would fail the
	// test if DecideVerification were called.
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_DecideVerification_OrganizerAllowed(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	e, mint := newVerificationTestServer(t, profileUC)

	profileID := uuid.New()
	decided := &entity.Profile{
		ID:                 profileID,
		VerificationStatus: entity.VerificationApproved,
		IsVerified:         true,
	}

	profileUC.EXPECT().
		DecideVerification(mock.Anything, profileID, entity.VerificationOutcomeApprove).
		Return(decided, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, decideVerificationRequest(profileID, mint(entity.RoleOrganizer)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestRouter_DecideVerification_MissingToken(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	e, _ := newVerificationTestServer(t, profileUC)

	req := httptest.NewRequest(
		http.MethodPost,
		"/profiles/"+uuid.New().String()+"/verification/decision",
		strings.NewReader(`{"outcome":"approve"}`),
	)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
