package handler

import (
	"log/slog"
	"net/http"

	"yatai/internal/delivery/http/middleware"
	"yatai/internal/delivery/http/response"
	"yatai/internal/domain/entity"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// DecideVerificationRequest carries a reviewer's verification decision.
type DecideVerificationRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approve reject"`
}

// GetProfile returns the caller's profile for their role, creating an empty
// one on first access.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile applies the editable fields to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, role, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// SubmitForVerification moves the caller's profile into the review queue.
func (h *ProfileHandler) SubmitForVerification(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	profile, err := h.profileUC.SubmitForVerification(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile submitted for verification")
}

// DecideVerification records a reviewer's approve/reject outcome on a pending profile.
func (h *ProfileHandler) DecideVerification(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile id")
	}

	var req DecideVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.DecideVerification(c.Request().Context(), profileID, entity.VerificationOutcome(req.Outcome))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Verification decision recorded")
}

// callerIdentity extracts the authenticated user id and role from the context.
func callerIdentity(c echo.Context) (uuid.UUID, entity.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}

	role, ok := middleware.GetRole(c)
	if !ok {
		return uuid.Nil, "", false
	}

	return userID, role, true
}
