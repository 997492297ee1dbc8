package handler

import (
	"log/slog"
	"net/http"

	"yatai/internal/delivery/http/response"
	"yatai/internal/domain/entity"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	ProfileUC     usecase.ProfileUsecase
	Logger        *slog.Logger
}

// ApplicationHandler holds dependencies for application-related handlers.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	profileUC     usecase.ProfileUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler.
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		profileUC:     params.ProfileUC,
		logger:        params.Logger,
	}
}

// DecideApplicationRequest carries an organizer's decision on an application.
type DecideApplicationRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approve reject"`
}

// Apply creates a pending application from the caller's store to an event.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	profileID, ok := h.profileID(c, entity.RoleStore)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var input *usecase.ApplyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	application, err := h.applicationUC.Apply(c.Request().Context(), eventID, profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// Decide records the organizer's approve/reject outcome on an application.
func (h *ApplicationHandler) Decide(c echo.Context) error {
	profileID, ok := h.profileID(c, entity.RoleOrganizer)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid application id")
	}

	var req DecideApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	application, err := h.applicationUC.Decide(c.Request().Context(), profileID, applicationID, entity.ApplicationOutcome(req.Outcome))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, application, "Application decision recorded")
}

// Cancel withdraws the caller's own pending application.
func (h *ApplicationHandler) Cancel(c echo.Context) error {
	profileID, ok := h.profileID(c, entity.RoleStore)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid application id")
	}

	application, err := h.applicationUC.Cancel(c.Request().Context(), profileID, applicationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, application, "Application cancelled successfully")
}

// ListForEvent lists an event's applications for its organizer.
func (h *ApplicationHandler) ListForEvent(c echo.Context) error {
	profileID, ok := h.profileID(c, entity.RoleOrganizer)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	applications, err := h.applicationUC.ListForEvent(c.Request().Context(), profileID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, applications, "")
}

// ListForStore lists the applications the caller's store has made.
func (h *ApplicationHandler) ListForStore(c echo.Context) error {
	profileID, ok := h.profileID(c, entity.RoleStore)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	applications, err := h.applicationUC.ListForStore(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, applications, "")
}

// profileID resolves the caller's profile for the required role.
func (h *ApplicationHandler) profileID(c echo.Context, required entity.Role) (uuid.UUID, bool) {
	userID, role, ok := callerIdentity(c)
	if !ok || role != required {
		return uuid.Nil, false
	}

	profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
	if err != nil {
		return uuid.Nil, false
	}

	return profile.ID, true
}
