package model

import (
	"time"

	"yatai/internal/domain/entity"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. RequiredDocuments is stored as a
// JSON column through GORM's serializer.
type EventModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizerProfileID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text"`
	MainImageURL        string    `gorm:"type:text"`
	EventDate           time.Time `gorm:"not null"`
	StartTime           string    `gorm:"type:varchar(8)"`
	EndTime             string    `gorm:"type:varchar(8)"`
	Location            string    `gorm:"type:varchar(255)"`
	Address             string    `gorm:"type:text"`
	MaxStores           int       `gorm:"not null;default:0"`
	EntryFee            int64     `gorm:"not null;default:0"`
	RequiredDocuments   []string  `gorm:"serializer:json"`
	ApplicationDeadline *time.Time
	Status              string `gorm:"type:varchar(16);not null;default:'draft';index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// ToEventModel maps a domain entity to its persistence model.
func ToEventModel(event *entity.Event) *EventModel {
	return &EventModel{
		ID:                  event.ID,
		OrganizerProfileID:  event.OrganizerProfileID,
		Title:               event.Title,
		Description:         event.Description,
		MainImageURL:        event.MainImageURL,
		EventDate:           event.EventDate,
		StartTime:           event.StartTime,
		EndTime:             event.EndTime,
		Location:            event.Location,
		Address:             event.Address,
		MaxStores:           event.MaxStores,
		EntryFee:            event.EntryFee,
		RequiredDocuments:   event.RequiredDocuments,
		ApplicationDeadline: event.ApplicationDeadline,
		Status:              event.Status.String(),
		CreatedAt:           event.CreatedAt,
		UpdatedAt:           event.UpdatedAt,
	}
}

// ToEventDomain maps a persistence model back to a pure domain entity.
func (m *EventModel) ToEventDomain() *entity.Event {
	return &entity.Event{
		ID:                  m.ID,
		OrganizerProfileID:  m.OrganizerProfileID,
		Title:               m.Title,
		Description:         m.Description,
		MainImageURL:        m.MainImageURL,
		EventDate:           m.EventDate,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		Location:            m.Location,
		Address:             m.Address,
		MaxStores:           m.MaxStores,
		EntryFee:            m.EntryFee,
		RequiredDocuments:   m.RequiredDocuments,
		ApplicationDeadline: m.ApplicationDeadline,
		Status:              entity.EventStatus(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
