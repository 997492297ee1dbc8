package repository

import (
	"context"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned when a document is not found.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository defines the interface for document-record database
// operations.
type DocumentRepository interface {
	// Create persists a new document record.
	Create(ctx context.Context, document *entity.Document) error

	// FindByID retrieves a document by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)

	// FindByOwner retrieves all documents attached to an owner, newest first.
	FindByOwner(ctx context.Context, kind entity.DocumentOwnerKind, ownerID uuid.UUID) ([]*entity.Document, error)

	// Update persists the full document record (used to attach a judgment).
	Update(ctx context.Context, document *entity.Document) error

	// Delete removes a document record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
