package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"yatai/internal/delivery/http/response"
	"yatai/internal/domain/entity"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC   usecase.EventUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	eventUC   usecase.EventUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC:   params.EventUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateEvent creates a draft event owned by the caller's organizer profile.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	profileID, ok := h.organizerProfileID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	var input *usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// UpdateEvent applies the editable fields to an event the caller owns.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	profileID, ok := h.organizerProfileID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var input *usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), profileID, eventID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// PublishEvent transitions a draft event to published.
func (h *EventHandler) PublishEvent(c echo.Context) error {
	return h.transition(c, h.eventUC.PublishEvent, "Event published successfully")
}

// CancelEvent transitions a published event to cancelled.
func (h *EventHandler) CancelEvent(c echo.Context) error {
	return h.transition(c, h.eventUC.CancelEvent, "Event cancelled successfully")
}

// CompleteEvent marks a published event as having taken place.
func (h *EventHandler) CompleteEvent(c echo.Context) error {
	return h.transition(c, h.eventUC.CompleteEvent, "Event completed successfully")
}

// GetEvent returns a single event by id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// ListPublishedEvents returns events stores can currently browse and apply to.
func (h *EventHandler) ListPublishedEvents(c echo.Context) error {
	events, err := h.eventUC.ListPublishedEvents(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// ListOrganizerEvents returns all events the caller's organizer profile owns.
func (h *EventHandler) ListOrganizerEvents(c echo.Context) error {
	profileID, ok := h.organizerProfileID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	events, err := h.eventUC.ListOrganizerEvents(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// AttachMainImage uploads an event main image (multipart field "image") and
// records its URL on an event the caller owns.
func (h *EventHandler) AttachMainImage(c echo.Context) error {
	profileID, ok := h.organizerProfileID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}

	event, err := h.eventUC.AttachMainImage(c.Request().Context(), profileID, eventID, &usecase.EventImageInput{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event image attached successfully")
}

// EventQR streams a PNG QR code linking to the event's page.
func (h *EventHandler) EventQR(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	png, err := h.eventUC.EventQR(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// transition runs one of the lifecycle operations keyed by the path event id.
func (h *EventHandler) transition(
	c echo.Context,
	op func(ctx context.Context, organizerProfileID, eventID uuid.UUID) (*entity.Event, error),
	message string,
) error {
	profileID, ok := h.organizerProfileID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := op(c.Request().Context(), profileID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, message)
}

// organizerProfileID resolves the caller's organizer profile.
func (h *EventHandler) organizerProfileID(c echo.Context) (uuid.UUID, bool) {
	userID, role, ok := callerIdentity(c)
	if !ok || role != entity.RoleOrganizer {
		return uuid.Nil, false
	}

	profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
	if err != nil {
		return uuid.Nil, false
	}

	return profile.ID, true
}
