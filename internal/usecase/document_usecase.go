package usecase

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPurpose selects which file constraints apply to an upload.
type UploadPurpose string

const (
	// UploadPurposeGeneric covers in-app document uploads (10MB, word docs allowed).
	UploadPurposeGeneric UploadPurpose = "generic"
	// UploadPurposeRegistration covers registration-step documents (5MB, no word docs).
	UploadPurposeRegistration UploadPurpose = "registration"
	// UploadPurposeEventImage covers event main images (5MB, images only).
	UploadPurposeEventImage UploadPurpose = "event_image"
)

// UploadInput carries an uploaded file and its destination.
type UploadInput struct {
	OwnerKind    entity.DocumentOwnerKind
	OwnerID      uuid.UUID
	DocumentType entity.DocumentType
	FileName     string
	MimeType     string
	Content      []byte
	Purpose      UploadPurpose
}

// DocumentUsecase orchestrates document upload, deletion and classification.
type DocumentUsecase interface {
	// Upload validates the file constraints, stores the blob, and persists
	// the document record. If persisting fails after the blob was stored,
	// the blob is deleted before the error is surfaced; if that cleanup also
	// fails, both errors are reported together.
	Upload(ctx context.Context, input *UploadInput) (*entity.Document, error)

	// Delete removes the document record first and the blob second. A blob
	// deletion failure after the record is gone is reported, but the record
	// stays deleted; the orphaned file is an accepted trade-off. Only the
	// owning profile may delete a document.
	Delete(ctx context.Context, documentID, callerProfileID uuid.UUID) error

	// Classify runs the stored document through the external classifier and
	// attaches the judgment to the record. The judgment is advisory only.
	// Only the owning profile may trigger classification.
	Classify(ctx context.Context, documentID, callerProfileID uuid.UUID) (*entity.Document, error)

	// ListByOwner lists the documents attached to a profile or application.
	ListByOwner(ctx context.Context, kind entity.DocumentOwnerKind, ownerID uuid.UUID) ([]*entity.Document, error)
}
