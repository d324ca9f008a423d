package model

import "time"

// SerialCounter is a monotonic per-Jalali-month document counter.
// Key is "<kind>:<year><month>", e.g. "pr:140406".
type SerialCounter struct {
	Key       string    `gorm:"type:varchar(30);primaryKey" json:"key"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
