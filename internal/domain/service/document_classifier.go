package service

import (
	"context"

	"yatai/internal/domain/entity"
)

// DocumentClassifier sends document content to an external vision/text model
// and normalizes the answer into a ValidityJudgment.
//
// Contract: a malformed or unrecognized document never produces an error;
// it produces IsValid=false with populated Issues. An error is returned only
// when the classifier itself is unreachable or answers with something that
// cannot be parsed, in which case it is a ServiceUnavailableError.
type DocumentClassifier interface {
	// Classify judges the given document content. Image content is sent as an
	// inline image; any other MIME type is sent as text.
	Classify(ctx context.Context, content []byte, mimeType string, docType entity.DocumentType) (*entity.ValidityJudgment, error)
}
