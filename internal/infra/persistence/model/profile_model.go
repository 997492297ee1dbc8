package model

import (
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The composite unique index on
// (user_id, role) guarantees one profile per user per role.
type ProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_user_role"`
	Role               string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_profiles_user_role"`
	Name               string    `gorm:"type:varchar(255)"`
	ContactName        string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(32)"`
	Email              string    `gorm:"type:varchar(255)"`
	Address            string    `gorm:"type:text"`
	Description        string    `gorm:"type:text"`
	Website            string    `gorm:"type:text"`
	Instagram          string    `gorm:"type:varchar(255)"`
	Twitter            string    `gorm:"type:varchar(255)"`
	IsVerified         bool      `gorm:"not null;default:false"`
	VerificationStatus string    `gorm:"type:varchar(16);not null;default:'not_submitted'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToProfileModel maps a domain entity to its persistence model.
func ToProfileModel(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		Role:               profile.Role.String(),
		Name:               profile.Name,
		ContactName:        profile.ContactName,
		Phone:              profile.Phone,
		Email:              profile.Email,
		Address:            profile.Address,
		Description:        profile.Description,
		Website:            profile.Website,
		Instagram:          profile.Instagram,
		Twitter:            profile.Twitter,
		IsVerified:         profile.IsVerified,
		VerificationStatus: profile.VerificationStatus.String(),
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}

// ToProfileDomain maps a persistence model back to a pure domain entity.
func (m *ProfileModel) ToProfileDomain() *entity.Profile {
	return &entity.Profile{
		ID:                 m.ID,
		UserID:             m.UserID,
		Role:               entity.Role(m.Role),
		Name:               m.Name,
		ContactName:        m.ContactName,
		Phone:              m.Phone,
		Email:              m.Email,
		Address:            m.Address,
		Description:        m.Description,
		Website:            m.Website,
		Instagram:          m.Instagram,
		Twitter:            m.Twitter,
		IsVerified:         m.IsVerified,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
