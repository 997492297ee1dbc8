package postgres

import (
	"context"

	"yatai/internal/domain/entity"
	"yatai/internal/domain/repository"
	"yatai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// documentRepository implements the domain's DocumentRepository interface using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// Create persists a new document record.
func (repo *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentM := model.ToDocumentModel(document)

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		return errors.Wrap(err, "failed to create document")
	}

	document.ID = documentM.ID
	document.CreatedAt = documentM.CreatedAt
	document.UpdatedAt = documentM.UpdatedAt

	return nil
}

// FindByID retrieves a single document by its unique ID.
func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var documentM model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&documentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return documentM.ToDocumentDomain(), nil
}

// FindByOwner retrieves all documents attached to an owner, newest first.
func (repo *documentRepository) FindByOwner(ctx context.Context, kind entity.DocumentOwnerKind, ownerID uuid.UUID) ([]*entity.Document, error) {
	var documentMs []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", kind.String(), ownerID).
		Order("created_at DESC").
		Find(&documentMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find documents by owner")
	}

	documents := make([]*entity.Document, 0, len(documentMs))
	for _, documentM := range documentMs {
		documents = append(documents, documentM.ToDocumentDomain())
	}

	return documents, nil
}

// Update persists the full document record, including judgment columns.
func (repo *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	documentM := model.ToDocumentModel(document)

	result := repo.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("id = ?", documentM.ID).
		Select("*").
		Omit("id", "owner_kind", "owner_id", "created_at").
		Updates(documentM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// Delete removes a document record by its ID.
func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DocumentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}
