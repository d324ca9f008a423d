package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag annotates daily reports
type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label string    `gorm:"type:varchar(100);not null" json:"label"`
	// NormalizedLabel backs the duplicate check (trimmed, lowercased,
	// whitespace collapsed).
	NormalizedLabel string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Unit is a base-data label (organizational measurement units)
type Unit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
