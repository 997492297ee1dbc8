// Package model contains the GORM persistence models mirroring the database
// schema, kept separate from the pure domain entities.
package model

import (
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LineUserID  string    `gorm:"type:varchar(64);unique;not null"`
	Role        string    `gorm:"type:varchar(16);not null"`
	DisplayName string    `gorm:"type:varchar(255)"`
	PictureURL  string    `gorm:"type:text"`
	Phone       string    `gorm:"type:varchar(32)"`
	Email       string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profiles []ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserModel maps a domain entity to its persistence model.
func ToUserModel(user *entity.User) *UserModel {
	return &UserModel{
		ID:          user.ID,
		LineUserID:  user.LineUserID,
		Role:        user.Role.String(),
		DisplayName: user.DisplayName,
		PictureURL:  user.PictureURL,
		Phone:       user.Phone,
		Email:       user.Email,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func (m *UserModel) ToUserDomain() *entity.User {
	return &entity.User{
		ID:          m.ID,
		LineUserID:  m.LineUserID,
		Role:        entity.Role(m.Role),
		DisplayName: m.DisplayName,
		PictureURL:  m.PictureURL,
		Phone:       m.Phone,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
