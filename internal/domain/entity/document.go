package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DocumentOwnerKind identifies which entity family a document belongs to.
// The owner kind determines which document types are acceptable.
type DocumentOwnerKind string

const (
	// DocumentOwnerProfile marks a document attached to a store/organizer profile.
	DocumentOwnerProfile DocumentOwnerKind = "profile"
	// DocumentOwnerApplication marks a document attached to an event application.
	DocumentOwnerApplication DocumentOwnerKind = "application"
	// DocumentOwnerEvent marks a document attached to an event, e.g. its main image.
	DocumentOwnerEvent DocumentOwnerKind = "event"
)

// String returns the string representation of the DocumentOwnerKind.
func (k DocumentOwnerKind) String() string {
	return string(k)
}

// IsValid checks if the DocumentOwnerKind is a valid value.
func (k DocumentOwnerKind) IsValid() bool {
	switch k {
	case DocumentOwnerProfile, DocumentOwnerApplication, DocumentOwnerEvent:
		return true
	default:
		return false
	}
}

// DocumentType is the closed enum of document categories the platform
// accepts. Which subset applies depends on the owner kind.
type DocumentType string

const (
	// DocumentTypeBusinessLicense is the business/operating license.
	DocumentTypeBusinessLicense DocumentType = "business_license"
	// DocumentTypeTaxCertificate is the tax payment certificate.
	DocumentTypeTaxCertificate DocumentType = "tax_certificate"
	// DocumentTypeInsuranceCertificate is the liability insurance certificate (optional).
	DocumentTypeInsuranceCertificate DocumentType = "insurance_certificate"
	// DocumentTypeProductPhotos are photos of the store's products (optional, store only).
	DocumentTypeProductPhotos DocumentType = "product_photos"
	// DocumentTypeEventImage is the main image shown on an event's page.
	DocumentTypeEventImage DocumentType = "event_image"
)

// String returns the string representation of the DocumentType.
func (t DocumentType) String() string {
	return string(t)
}

// AllowedDocumentTypes returns the document types acceptable for an owner kind.
func AllowedDocumentTypes(kind DocumentOwnerKind) []DocumentType {
	switch kind {
	case DocumentOwnerProfile:
		return []DocumentType{
			DocumentTypeBusinessLicense,
			DocumentTypeTaxCertificate,
			DocumentTypeInsuranceCertificate,
			DocumentTypeProductPhotos,
		}
	case DocumentOwnerApplication:
		return []DocumentType{
			DocumentTypeBusinessLicense,
			DocumentTypeProductPhotos,
		}
	case DocumentOwnerEvent:
		return []DocumentType{
			DocumentTypeEventImage,
		}
	default:
		return nil
	}
}

// IsValidFor checks whether the document type belongs to the enum associated
// with the given owner kind.
func (t DocumentType) IsValidFor(kind DocumentOwnerKind) bool {
	return slices.Contains(AllowedDocumentTypes(kind), t)
}

// ValidityJudgment is the normalized result of running a document through
// the external classifier. The confidence score is advisory only; no
// approve/reject decision is ever derived from it automatically.
type ValidityJudgment struct {
	ExtractedText   string     // Text the classifier read out of the document.
	IsValid         bool       // Whether the classifier considers the document valid.
	ExpirationDate  *time.Time // Expiration date found on the document, if any.
	Issues          []string   // Problems the classifier found; populated when IsValid is false.
	ConfidenceScore float64    // Classifier confidence in [0, 1].
}

// Document is an uploaded file attached to a profile or an application.
// Uniqueness per (owner, type) is not enforced; the latest upload per type
// wins by convention.
type Document struct {
	ID           uuid.UUID         // The Global Unique Identifier (GUID) for the document.
	OwnerKind    DocumentOwnerKind // Which entity family the owner id refers to.
	OwnerID      uuid.UUID         // Profile or application id, depending on OwnerKind.
	DocumentType DocumentType      // Category of the document; constrained by OwnerKind.
	FileName     string            // Original file name as uploaded.
	FilePath     string            // Path of the stored blob inside the bucket.
	FileSize     int64             // Size of the stored blob in bytes.
	MimeType     string            // MIME type of the stored blob.
	Judgment     *ValidityJudgment // Classifier result; nil until classified.
	CreatedAt    time.Time         // Timestamp of when this document was uploaded.
	UpdatedAt    time.Time         // Timestamp of the last modification to this record.
}
