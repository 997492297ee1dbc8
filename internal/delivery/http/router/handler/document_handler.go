package handler

import (
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

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	ProfileUC  usecase.ProfileUsecase
	Logger     *slog.Logger
}

// DocumentHandler holds dependencies for document-related handlers.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	profileUC  usecase.ProfileUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler.
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		profileUC:  params.ProfileUC,
		logger:     params.Logger,
	}
}

// Upload stores a document file and its record. Multipart fields:
// file, document_type, and optionally owner_kind, owner_id, purpose.
// When owner fields are omitted the document attaches to the caller's profile.
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
	}

	ownerKind := entity.DocumentOwnerProfile
	if kind := c.FormValue("owner_kind"); kind != "" {
		ownerKind = entity.DocumentOwnerKind(kind)
	}

	var ownerID uuid.UUID
	if raw := c.FormValue("owner_id"); raw != "" {
		ownerID, err = uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid owner id")
		}
	} else {
		profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		ownerID = profile.ID
	}

	purpose := usecase.UploadPurposeGeneric
	if raw := c.FormValue("purpose"); raw != "" {
		purpose = usecase.UploadPurpose(raw)
	}

	input := &usecase.UploadInput{
		OwnerKind:    ownerKind,
		OwnerID:      ownerID,
		DocumentType: entity.DocumentType(c.FormValue("document_type")),
		FileName:     fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Content:      content,
		Purpose:      purpose,
	}

	document, err := h.documentUC.Upload(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, document, "Document uploaded successfully")
}

// Delete removes a document record and its stored file. Only the owning
// profile may delete a document.
func (h *DocumentHandler) Delete(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document id")
	}

	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.documentUC.Delete(c.Request().Context(), documentID, profile.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted successfully")
}

// Classify runs the stored document through the validity classifier. Only
// the owning profile may trigger it.
func (h *DocumentHandler) Classify(c echo.Context) error {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document id")
	}

	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	document, err := h.documentUC.Classify(c.Request().Context(), documentID, profile.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document, "Document classified successfully")
}

// List returns the documents attached to an owner. Without query parameters
// it lists the caller's own profile documents.
func (h *DocumentHandler) List(c echo.Context) error {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing identity in token")
	}

	ownerKind := entity.DocumentOwnerProfile
	if kind := c.QueryParam("owner_kind"); kind != "" {
		ownerKind = entity.DocumentOwnerKind(kind)
	}

	var ownerID uuid.UUID
	if raw := c.QueryParam("owner_id"); raw != "" {
		var err error
		ownerID, err = uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid owner id")
		}
	} else {
		profile, err := h.profileUC.GetOrCreateProfile(c.Request().Context(), userID, role)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		ownerID = profile.ID
	}

	documents, err := h.documentUC.ListByOwner(c.Request().Context(), ownerKind, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, documents, "")
}
