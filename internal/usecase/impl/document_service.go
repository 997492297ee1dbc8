package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"yatai/config"
	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	"yatai/internal/errors"
	"yatai/internal/usecase"
	"yatai/internal/util"

	"github.com/google/uuid"
)

// Fallback upload limits, used when the config leaves them unset.
const (
	defaultMaxUploadBytes             = 10 << 20
	defaultRegistrationMaxUploadBytes = 5 << 20
	defaultImageMaxUploadBytes        = 5 << 20
)

// genericAllowedMimeTypes are accepted for in-app document uploads.
var genericAllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// registrationAllowedMimeTypes are accepted during registration, where word
// documents are not.
var registrationAllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
}

// imageAllowedMimeTypes are accepted for event main images.
var imageAllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

type documentService struct {
	documentRepo    repository.DocumentRepository
	applicationRepo repository.ApplicationRepository
	eventRepo       repository.EventRepository
	storage         service.FileStorage
	classifier      service.DocumentClassifier
	cfg             *config.Config
	logger          *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	applicationRepo repository.ApplicationRepository,
	eventRepo repository.EventRepository,
	storage service.FileStorage,
	classifier service.DocumentClassifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DocumentUsecase {
	return &documentService{
		documentRepo:    documentRepo,
		applicationRepo: applicationRepo,
		eventRepo:       eventRepo,
		storage:         storage,
		classifier:      classifier,
		cfg:             cfg,
		logger:          logger,
	}
}

// Upload validates the file, stores the blob and persists the record. The
// blob is written first; if the record insert then fails, the blob is
// deleted again so storage and database cannot drift apart silently.
func (s *documentService) Upload(ctx context.Context, input *usecase.UploadInput) (*entity.Document, error) {
	if err := s.validateUpload(input); err != nil {
		return nil, err
	}

	path := blobPath(input.DocumentType, input.FileName)
	if err := s.storage.Put(ctx, path, input.Content, input.MimeType); err != nil {
		return nil, domainerrors.NewServiceUnavailableError("file storage", err)
	}

	document := &entity.Document{
		ID:           uuid.New(),
		OwnerKind:    input.OwnerKind,
		OwnerID:      input.OwnerID,
		DocumentType: input.DocumentType,
		FileName:     input.FileName,
		FilePath:     path,
		FileSize:     int64(len(input.Content)),
		MimeType:     input.MimeType,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		createErr := errors.Wrap(err, "failed to create document record")
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			// The blob is now orphaned; surface both failures.
			return nil, errors.Join(createErr, errors.Wrap(delErr, "failed to clean up stored blob"))
		}

		return nil, createErr
	}

	s.logger.Info("document uploaded",
		slog.String("document_id", document.ID.String()),
		slog.String("document_type", document.DocumentType.String()),
		slog.String("size", util.FormatBytes(document.FileSize)),
	)

	return document, nil
}

// Delete removes the record first and the blob second. If the blob deletion
// fails the record stays gone; an orphaned blob is harmless, a dangling
// record pointing at nothing is not.
func (s *documentService) Delete(ctx context.Context, documentID, callerProfileID uuid.UUID) error {
	document, err := s.findDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwner(ctx, document, callerProfileID); err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return errors.Wrap(err, "failed to delete document record")
	}

	if err := s.storage.Delete(ctx, document.FilePath); err != nil {
		s.logger.Warn("document blob left orphaned after record deletion",
			slog.String("document_id", documentID.String()),
			slog.String("path", document.FilePath),
			slog.Any("error", err),
		)
	}

	return nil
}

// Classify runs the stored document through the external classifier and
// attaches the judgment to the record.
func (s *documentService) Classify(ctx context.Context, documentID, callerProfileID uuid.UUID) (*entity.Document, error) {
	document, err := s.findDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, document, callerProfileID); err != nil {
		return nil, err
	}

	content, err := s.storage.Get(ctx, document.FilePath)
	if err != nil {
		return nil, domainerrors.NewServiceUnavailableError("file storage", err)
	}

	judgment, err := s.classifier.Classify(ctx, content, document.MimeType, document.DocumentType)
	if err != nil {
		return nil, err
	}

	document.Judgment = judgment
	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, errors.Wrap(err, "failed to update document record")
	}

	return document, nil
}

// ListByOwner lists the documents attached to a profile or application.
func (s *documentService) ListByOwner(ctx context.Context, kind entity.DocumentOwnerKind, ownerID uuid.UUID) ([]*entity.Document, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown document owner kind")
	}

	documents, err := s.documentRepo.FindByOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return documents, nil
}

// authorizeOwner resolves the profile a document ultimately belongs to and
// rejects callers that are not it. Application documents belong to the store
// that applied, event documents to the organizer that owns the event.
func (s *documentService) authorizeOwner(ctx context.Context, document *entity.Document, callerProfileID uuid.UUID) error {
	switch document.OwnerKind {
	case entity.DocumentOwnerProfile:
		if document.OwnerID == callerProfileID {
			return nil
		}
	case entity.DocumentOwnerApplication:
		application, err := s.applicationRepo.FindByID(ctx, document.OwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve application owner")
		}
		if application.StoreProfileID == callerProfileID {
			return nil
		}
	case entity.DocumentOwnerEvent:
		event, err := s.eventRepo.FindByID(ctx, document.OwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve event owner")
		}
		if event.OrganizerProfileID == callerProfileID {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

func (s *documentService) findDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	return document, nil
}

// validateUpload checks the owner/type pairing and the purpose-dependent
// size and MIME constraints before anything is stored.
func (s *documentService) validateUpload(input *usecase.UploadInput) error {
	if !input.OwnerKind.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown document owner kind")
	}
	if !input.DocumentType.IsValidFor(input.OwnerKind) {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
			"document type %q is not allowed for %s documents",
			input.DocumentType, input.OwnerKind,
		))
	}
	if len(input.Content) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("file is empty")
	}

	maxSize, allowed := s.uploadConstraints(input.Purpose)
	if size := int64(len(input.Content)); size > maxSize {
		return domainerrors.ErrFileTooLarge.WrapMessage(fmt.Sprintf(
			"file is %s, the limit is %s",
			util.FormatBytes(size), util.FormatBytes(maxSize),
		))
	}

	mimeType := strings.ToLower(input.MimeType)
	for _, candidate := range allowed {
		if mimeType == candidate {
			return nil
		}
	}

	return domainerrors.ErrUnsupportedFileType.WrapMessage(fmt.Sprintf(
		"file type %q is not accepted", input.MimeType,
	))
}

// uploadConstraints resolves the size limit and MIME allowlist for a purpose.
// Registration and image uploads are stricter on both axes.
func (s *documentService) uploadConstraints(purpose usecase.UploadPurpose) (int64, []string) {
	switch purpose {
	case usecase.UploadPurposeRegistration:
		maxSize := int64(defaultRegistrationMaxUploadBytes)
		if s.cfg.Upload != nil && s.cfg.Upload.RegistrationMaxSizeBytes > 0 {
			maxSize = s.cfg.Upload.RegistrationMaxSizeBytes
		}

		return maxSize, registrationAllowedMimeTypes
	case usecase.UploadPurposeEventImage:
		maxSize := int64(defaultImageMaxUploadBytes)
		if s.cfg.Upload != nil && s.cfg.Upload.ImageMaxSizeBytes > 0 {
			maxSize = s.cfg.Upload.ImageMaxSizeBytes
		}

		return maxSize, imageAllowedMimeTypes
	}

	maxSize := int64(defaultMaxUploadBytes)
	if s.cfg.Upload != nil && s.cfg.Upload.MaxSizeBytes > 0 {
		maxSize = s.cfg.Upload.MaxSizeBytes
	}

	return maxSize, genericAllowedMimeTypes
}

// blobPath builds a collision-free bucket path for an upload.
func blobPath(docType entity.DocumentType, fileName string) string {
	return fmt.Sprintf("documents/%s/%d_%s_%s",
		docType,
		time.Now().UnixMilli(),
		uuid.NewString(),
		util.SanitizeFileName(fileName),
	)
}
