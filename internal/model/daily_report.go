package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyReport is a dated site log entry, annotated with tags
type DailyReport struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportDate string     `gorm:"type:varchar(10);not null;index" json:"report_date"` // Jalali YYYY-MM-DD
	Body       string     `gorm:"type:text" json:"body"`
	ProjectID  *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	Project    *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AuthorID   *uuid.UUID `gorm:"type:uuid" json:"author_id"`

	Tags        []Tag        `gorm:"many2many:daily_report_tags;" json:"tags"`
	Attachments []Attachment `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"attachments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attachment is a file referenced by a daily report. FileDate is extracted
// from the filename when possible.
type Attachment struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	FileName string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileURL  string    `gorm:"type:text" json:"file_url"`
	FileDate string    `gorm:"type:varchar(10)" json:"file_date"` // YYYY-MM-DD as found in the name
	Calendar string    `gorm:"type:varchar(10)" json:"calendar"`  // jalali or gregorian
	CreatedAt time.Time `json:"created_at"`
}
