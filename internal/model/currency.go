package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is base data for foreign-currency bookkeeping (base: IRR)
type Currency struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"` // USD, EUR, AED...
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:1" json:"rate"` // rials per unit
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
