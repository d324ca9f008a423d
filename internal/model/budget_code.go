package model

import (
	"time"

	"github.com/google/uuid"
)

// BudgetCode is a per-scope suffix/description pair. The full code is the
// scope's fixed prefix concatenated with the suffix.
type BudgetCode struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Scope       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_budget_codes_scope_suffix" json:"scope"`
	Suffix      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_budget_codes_scope_suffix" json:"suffix"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
