package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"yatai/config"
	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/errors"
	mockRepo "yatai/internal/mocks/repository"
	mockService "yatai/internal/mocks/service"
	"yatai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentFixture struct {
	documentRepo    *mockRepo.MockDocumentRepository
	applicationRepo *mockRepo.MockApplicationRepository
	eventRepo       *mockRepo.MockEventRepository
	storage         *mockService.MockFileStorage
	classifier      *mockService.MockDocumentClassifier
	svc             usecase.DocumentUsecase
}

func newDocumentFixture(t *testing.T, cfg *config.Config) *documentFixture {
	if cfg == nil {
		cfg = &config.Config{}
	}

	f := &documentFixture{
		documentRepo:    mockRepo.NewMockDocumentRepository(t),
		applicationRepo: mockRepo.NewMockApplicationRepository(t),
		eventRepo:       mockRepo.NewMockEventRepository(t),
		storage:         mockService.NewMockFileStorage(t),
		classifier:      mockService.NewMockDocumentClassifier(t),
	}
	f.svc = NewDocumentService(f.documentRepo, f.applicationRepo, f.eventRepo, f.storage, f.classifier, cfg, newTestLogger())

	return f
}

func newUploadInput() *usecase.UploadInput {
	return &usecase.UploadInput{
		OwnerKind:    entity.DocumentOwnerProfile,
		OwnerID:      uuid.New(),
		DocumentType: entity.DocumentTypeBusinessLicense,
		FileName:     "business license.pdf",
		MimeType:     "application/pdf",
		Content:      []byte("%PDF-1.7 content"),
		Purpose:      usecase.UploadPurposeGeneric,
	}
}

func TestDocumentService_Upload_Success(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	input := newUploadInput()

	var storedPath string
	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), input.Content, "application/pdf").
		RunAndReturn(func(_ context.Context, path string, _ []byte, _ string) error {
			storedPath = path

			return nil
		})

	f.documentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(nil)

	document, err := f.svc.Upload(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, storedPath, document.FilePath)
	assert.True(t, strings.HasPrefix(storedPath, "documents/business_license/"))
	assert.True(t, strings.HasSuffix(storedPath, "_business_license.pdf"))
	assert.Equal(t, "business license.pdf", document.FileName)
	assert.Equal(t, int64(len(input.Content)), document.FileSize)
	assert.Nil(t, document.Judgment)
}

func TestDocumentService_Upload_ExactLimitSucceeds(t *testing.T) {
	f := newDocumentFixture(t, &config.Config{
		Upload: &config.UploadConfig{MaxSizeBytes: 16},
	})

	ctx := context.Background()
	input := newUploadInput()
	input.Content = []byte("%PDF-1.7 content")
	require.Len(t, input.Content, 16)

	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), input.Content, "application/pdf").
		Return(nil)
	f.documentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(nil)

	document, err := f.svc.Upload(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(16), document.FileSize)
}

func TestDocumentService_Upload_FileTooLarge(t *testing.T) {
	f := newDocumentFixture(t, &config.Config{
		Upload: &config.UploadConfig{MaxSizeBytes: 16},
	})

	input := newUploadInput()
	input.Content = []byte("seventeen bytes!!")
	require.Len(t, input.Content, 17)

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestDocumentService_Upload_RegistrationLimitIsStricter(t *testing.T) {
	f := newDocumentFixture(t, &config.Config{
		Upload: &config.UploadConfig{
			MaxSizeBytes:             64,
			RegistrationMaxSizeBytes: 8,
		},
	})

	input := newUploadInput()
	input.Purpose = usecase.UploadPurposeRegistration
	input.Content = []byte("sixteen bytes!!!")

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestDocumentService_Upload_UnsupportedType(t *testing.T) {
	f := newDocumentFixture(t, nil)

	input := newUploadInput()
	input.FileName = "virus.exe"
	input.MimeType = "application/x-msdownload"

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestDocumentService_Upload_WordDocRejectedForRegistration(t *testing.T) {
	f := newDocumentFixture(t, nil)

	input := newUploadInput()
	input.Purpose = usecase.UploadPurposeRegistration
	input.FileName = "license.docx"
	input.MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestDocumentService_Upload_PdfRejectedForEventImage(t *testing.T) {
	f := newDocumentFixture(t, nil)

	input := newUploadInput()
	input.OwnerKind = entity.DocumentOwnerEvent
	input.DocumentType = entity.DocumentTypeEventImage
	input.Purpose = usecase.UploadPurposeEventImage

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestDocumentService_Upload_TypeNotAllowedForOwner(t *testing.T) {
	f := newDocumentFixture(t, nil)

	input := newUploadInput()
	input.OwnerKind = entity.DocumentOwnerApplication
	input.DocumentType = entity.DocumentTypeTaxCertificate

	document, err := f.svc.Upload(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDocumentService_Upload_CompensatesOnPersistFailure(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	input := newUploadInput()

	var storedPath string
	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), input.Content, "application/pdf").
		RunAndReturn(func(_ context.Context, path string, _ []byte, _ string) error {
			storedPath = path

			return nil
		})

	insertErr := errors.New("insert failed")
	f.documentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(insertErr)

	f.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, path string) error {
			assert.Equal(t, storedPath, path)

			return nil
		})

	document, err := f.svc.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, insertErr)
}

func TestDocumentService_Upload_ReportsFailedCompensation(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	input := newUploadInput()

	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), input.Content, "application/pdf").
		Return(nil)

	insertErr := errors.New("insert failed")
	f.documentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Document")).
		Return(insertErr)

	cleanupErr := errors.New("bucket gone")
	f.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Return(cleanupErr)

	document, err := f.svc.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, insertErr)
	assert.ErrorIs(t, err, cleanupErr)
}

func TestDocumentService_Upload_StorageUnavailable(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	input := newUploadInput()

	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), input.Content, "application/pdf").
		Return(errors.New("connection refused"))

	document, err := f.svc.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, document)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.ErrorCode())
}

func TestDocumentService_Delete_RecordFirstBlobSecond(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	ownerProfileID := uuid.New()
	document := &entity.Document{
		ID:        uuid.New(),
		OwnerKind: entity.DocumentOwnerProfile,
		OwnerID:   ownerProfileID,
		FilePath:  "documents/business_license/stored.pdf",
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)
	f.documentRepo.EXPECT().Delete(ctx, document.ID).Return(nil)
	f.storage.EXPECT().Delete(ctx, document.FilePath).Return(nil)

	require.NoError(t, f.svc.Delete(ctx, document.ID, ownerProfileID))
}

func TestDocumentService_Delete_OrphanBlobAccepted(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	ownerProfileID := uuid.New()
	document := &entity.Document{
		ID:        uuid.New(),
		OwnerKind: entity.DocumentOwnerProfile,
		OwnerID:   ownerProfileID,
		FilePath:  "documents/business_license/stored.pdf",
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)
	f.documentRepo.EXPECT().Delete(ctx, document.ID).Return(nil)
	f.storage.EXPECT().Delete(ctx, document.FilePath).Return(errors.New("blob missing"))

	// The record is gone; the stray blob does not fail the operation.
	require.NoError(t, f.svc.Delete(ctx, document.ID, ownerProfileID))
}

func TestDocumentService_Delete_NotOwner(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	document := &entity.Document{
		ID:        uuid.New(),
		OwnerKind: entity.DocumentOwnerProfile,
		OwnerID:   uuid.New(),
		FilePath:  "documents/business_license/stored.pdf",
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)

	err := f.svc.Delete(ctx, document.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDocumentService_Delete_ApplicationOwnedByApplyingStore(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	storeProfileID := uuid.New()
	application := &entity.Application{
		ID:             uuid.New(),
		StoreProfileID: storeProfileID,
	}
	document := &entity.Document{
		ID:        uuid.New(),
		OwnerKind: entity.DocumentOwnerApplication,
		OwnerID:   application.ID,
		FilePath:  "documents/product_photos/stored.jpg",
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)
	f.applicationRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
	f.documentRepo.EXPECT().Delete(ctx, document.ID).Return(nil)
	f.storage.EXPECT().Delete(ctx, document.FilePath).Return(nil)

	require.NoError(t, f.svc.Delete(ctx, document.ID, storeProfileID))
}

func TestDocumentService_Delete_NotFound(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	id := uuid.New()

	f.documentRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDocumentNotFound)

	err := f.svc.Delete(ctx, id, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestDocumentService_Classify_AttachesJudgment(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	ownerProfileID := uuid.New()
	document := &entity.Document{
		ID:           uuid.New(),
		OwnerKind:    entity.DocumentOwnerProfile,
		OwnerID:      ownerProfileID,
		DocumentType: entity.DocumentTypeBusinessLicense,
		FilePath:     "documents/business_license/stored.pdf",
		MimeType:     "application/pdf",
	}
	content := []byte("%PDF-1.7 content")
	expiration := time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC)
	judgment := &entity.ValidityJudgment{
		ExtractedText:   "Business license no. 12345",
		IsValid:         true,
		ExpirationDate:  &expiration,
		ConfidenceScore: 0.92,
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)
	f.storage.EXPECT().Get(ctx, document.FilePath).Return(content, nil)
	f.classifier.EXPECT().
		Classify(ctx, content, "application/pdf", entity.DocumentTypeBusinessLicense).
		Return(judgment, nil)
	f.documentRepo.EXPECT().Update(ctx, document).Return(nil)

	result, err := f.svc.Classify(ctx, document.ID, ownerProfileID)
	require.NoError(t, err)
	assert.Equal(t, judgment, result.Judgment)
}

func TestDocumentService_Classify_InvalidDocumentIsNotAnError(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	ownerProfileID := uuid.New()
	document := &entity.Document{
		ID:           uuid.New(),
		OwnerKind:    entity.DocumentOwnerProfile,
		OwnerID:      ownerProfileID,
		DocumentType: entity.DocumentTypeTaxCertificate,
		FilePath:     "documents/tax_certificate/stored.pdf",
		MimeType:     "application/pdf",
	}
	content := []byte("not a certificate")
	judgment := &entity.ValidityJudgment{
		IsValid:         false,
		Issues:          []string{"document does not appear to be a tax certificate"},
		ConfidenceScore: 0.34,
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)
	f.storage.EXPECT().Get(ctx, document.FilePath).Return(content, nil)
	f.classifier.EXPECT().
		Classify(ctx, content, "application/pdf", entity.DocumentTypeTaxCertificate).
		Return(judgment, nil)
	f.documentRepo.EXPECT().Update(ctx, document).Return(nil)

	result, err := f.svc.Classify(ctx, document.ID, ownerProfileID)
	require.NoError(t, err)
	assert.False(t, result.Judgment.IsValid)
	assert.NotEmpty(t, result.Judgment.Issues)
}

func TestDocumentService_Classify_NotOwner(t *testing.T) {
	f := newDocumentFixture(t, nil)

	ctx := context.Background()
	document := &entity.Document{
		ID:           uuid.New(),
		OwnerKind:    entity.DocumentOwnerProfile,
		OwnerID:      uuid.New(),
		DocumentType: entity.DocumentTypeBusinessLicense,
		FilePath:     "documents/business_license/stored.pdf",
		MimeType:     "application/pdf",
	}

	f.documentRepo.EXPECT().FindByID(ctx, document.ID).Return(document, nil)

	result, err := f.svc.Classify(ctx, document.ID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDocumentService_ListByOwner_InvalidKind(t *testing.T) {
	f := newDocumentFixture(t, nil)

	documents, err := f.svc.ListByOwner(context.Background(), "invoice", uuid.New())
	require.Error(t, err)
	assert.Nil(t, documents)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
