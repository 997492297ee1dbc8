package impl

import (
	"context"
	"log/slog"
	"time"

	"yatai/internal/domain/entity"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/repository"
	"yatai/internal/domain/service"
	"yatai/internal/errors"
	"yatai/internal/usecase"

	"github.com/google/uuid"
)

type profileService struct {
	profileRepo  repository.ProfileRepository
	documentRepo repository.DocumentRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	profileRepo repository.ProfileRepository,
	documentRepo repository.DocumentRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:  profileRepo,
		documentRepo: documentRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// GetOrCreateProfile returns the user's profile for a role, lazily creating
// an empty not_submitted profile on first access.
func (s *profileService) GetOrCreateProfile(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByUser(ctx, userID, role)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{
		ID:                 uuid.New(),
		UserID:             userID,
		Role:               role,
		VerificationStatus: entity.VerificationNotSubmitted,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateProfile applies the editable fields to the user's profile. The
// verification fields are deliberately not touchable from here.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, role entity.Role, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.ContactName = input.ContactName
	profile.Phone = input.Phone
	profile.Email = input.Email
	profile.Address = input.Address
	profile.Description = input.Description
	profile.Website = input.Website
	profile.Instagram = input.Instagram
	profile.Twitter = input.Twitter

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// SubmitForVerification moves the profile into pending once every required
// document type is present among the profile's uploads. Nothing is persisted
// when the transition is refused.
func (s *profileService) SubmitForVerification(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByUser(ctx, userID, role)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	documents, err := s.documentRepo.FindByOwner(ctx, entity.DocumentOwnerProfile, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile documents")
	}

	uploaded := make([]entity.DocumentType, 0, len(documents))
	for _, doc := range documents {
		uploaded = append(uploaded, doc.DocumentType)
	}

	if err := profile.SubmitForVerification(uploaded); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	s.logger.Info("profile submitted for verification",
		slog.String("profile_id", profile.ID.String()),
		slog.String("role", role.String()),
	)

	return profile, nil
}

// DecideVerification records a reviewer's outcome on a pending profile and
// publishes the status change. A publish failure is logged but does not roll
// back the decision.
func (s *profileService) DecideVerification(ctx context.Context, profileID uuid.UUID, outcome entity.VerificationOutcome) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	oldStatus := profile.VerificationStatus
	if err := profile.ApplyVerificationDecision(outcome); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	event := &service.StatusChangeEvent{
		Kind:            service.StatusChangeVerification,
		SubjectID:       profile.ID.String(),
		RecipientUserID: profile.UserID.String(),
		OldStatus:       oldStatus.String(),
		NewStatus:       profile.VerificationStatus.String(),
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
		s.logger.Error("failed to publish verification status change",
			slog.String("profile_id", profile.ID.String()),
			slog.Any("error", err),
		)
	}

	return profile, nil
}
