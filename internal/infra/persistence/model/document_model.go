package model

import (
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentModel mirrors the 'documents' table. The judgment columns are
// nullable; they stay empty until the classifier has run.
type DocumentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerKind    string    `gorm:"type:varchar(16);not null;index:idx_documents_owner"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_owner"`
	DocumentType string    `gorm:"type:varchar(32);not null"`
	FileName     string    `gorm:"type:varchar(255);not null"`
	FilePath     string    `gorm:"type:text;not null"`
	FileSize     int64     `gorm:"not null"`
	MimeType     string    `gorm:"type:varchar(128);not null"`

	ExtractedText   *string    `gorm:"type:text"`
	IsValid         *bool
	ExpirationDate  *time.Time
	Issues          []string `gorm:"serializer:json"`
	ConfidenceScore *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDocumentModel maps a domain entity to its persistence model.
func ToDocumentModel(document *entity.Document) *DocumentModel {
	m := &DocumentModel{
		ID:           document.ID,
		OwnerKind:    document.OwnerKind.String(),
		OwnerID:      document.OwnerID,
		DocumentType: document.DocumentType.String(),
		FileName:     document.FileName,
		FilePath:     document.FilePath,
		FileSize:     document.FileSize,
		MimeType:     document.MimeType,
		CreatedAt:    document.CreatedAt,
		UpdatedAt:    document.UpdatedAt,
	}

	if judgment := document.Judgment; judgment != nil {
		m.ExtractedText = &judgment.ExtractedText
		m.IsValid = &judgment.IsValid
		m.ExpirationDate = judgment.ExpirationDate
		m.Issues = judgment.Issues
		m.ConfidenceScore = &judgment.ConfidenceScore
	}

	return m
}

// ToDocumentDomain maps a persistence model back to a pure domain entity.
func (m *DocumentModel) ToDocumentDomain() *entity.Document {
	document := &entity.Document{
		ID:           m.ID,
		OwnerKind:    entity.DocumentOwnerKind(m.OwnerKind),
		OwnerID:      m.OwnerID,
		DocumentType: entity.DocumentType(m.DocumentType),
		FileName:     m.FileName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	// IsValid doubles as the marker for "classifier has run".
	if m.IsValid != nil {
		judgment := &entity.ValidityJudgment{
			IsValid:        *m.IsValid,
			ExpirationDate: m.ExpirationDate,
			Issues:         m.Issues,
		}
		if m.ExtractedText != nil {
			judgment.ExtractedText = *m.ExtractedText
		}
		if m.ConfidenceScore != nil {
			judgment.ConfidenceScore = *m.ConfidenceScore
		}
		document.Judgment = judgment
	}

	return document
}
