package model

import (
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplicationModel mirrors the 'event_applications' table. The composite
// unique index on (event_id, store_profile_id) backs the one-application-
// per-store rule against concurrent submissions.
type ApplicationModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_event_store"`
	StoreProfileID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_event_store"`
	StoreName          string    `gorm:"type:varchar(255)"`
	ContactName        string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(32)"`
	Email              string    `gorm:"type:varchar(255)"`
	ProductDescription string    `gorm:"type:text"`
	BoothSize          string    `gorm:"type:varchar(64)"`
	EquipmentNeeded    []string  `gorm:"serializer:json"`
	AdditionalInfo     string    `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	AppliedAt          time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "event_applications"
}

// ToApplicationModel maps a domain entity to its persistence model.
func ToApplicationModel(application *entity.Application) *ApplicationModel {
	return &ApplicationModel{
		ID:                 application.ID,
		EventID:            application.EventID,
		StoreProfileID:     application.StoreProfileID,
		StoreName:          application.StoreName,
		ContactName:        application.ContactName,
		Phone:              application.Phone,
		Email:              application.Email,
		ProductDescription: application.ProductDescription,
		BoothSize:          application.BoothSize,
		EquipmentNeeded:    application.EquipmentNeeded,
		AdditionalInfo:     application.AdditionalInfo,
		Status:             application.Status.String(),
		AppliedAt:          application.AppliedAt,
		CreatedAt:          application.CreatedAt,
		UpdatedAt:          application.UpdatedAt,
	}
}

// ToApplicationDomain maps a persistence model back to a pure domain entity.
func (m *ApplicationModel) ToApplicationDomain() *entity.Application {
	return &entity.Application{
		ID:                 m.ID,
		EventID:            m.EventID,
		StoreProfileID:     m.StoreProfileID,
		StoreName:          m.StoreName,
		ContactName:        m.ContactName,
		Phone:              m.Phone,
		Email:              m.Email,
		ProductDescription: m.ProductDescription,
		BoothSize:          m.BoothSize,
		EquipmentNeeded:    m.EquipmentNeeded,
		AdditionalInfo:     m.AdditionalInfo,
		Status:             entity.ApplicationStatus(m.Status),
		AppliedAt:          m.AppliedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
