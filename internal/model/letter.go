package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Letter is a numbered piece of outbound correspondence
type Letter struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Serial     string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"serial"`
	Subject    string     `gorm:"type:varchar(255);not null" json:"subject"`
	Recipient  string     `gorm:"type:varchar(255)" json:"recipient"`
	Body       string     `gorm:"type:text" json:"body"`
	LetterDate string     `gorm:"type:varchar(10)" json:"letter_date"` // Jalali YYYY-MM-DD
	CreatedBy  *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
