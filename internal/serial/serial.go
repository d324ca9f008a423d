// Package serial issues monotonic per-Jalali-month document serial numbers
// for payment requests and letters.
package serial

import (
	"context"
	"errors"
	"fmt"

	"panelapi/internal/jalali"
	"panelapi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document kinds with independent counters
const (
	KindPaymentRequest = "pr"
	KindLetter         = "lt"
)

// Service hands out serial numbers. Preview shows the next number without
// consuming it; Next consumes it under a row lock so concurrent clients never
// observe the same value.
type Service interface {
	Preview(ctx context.Context, kind string) (string, error)
	Next(ctx context.Context, kind string) (string, error)
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

// CounterKey builds the per-month counter key, e.g. "pr:140406"
func CounterKey(kind string, year, month int) string {
	return fmt.Sprintf("%s:%04d%02d", kind, year, month)
}

// Format renders a serial number as <yy><mm>-<seq>, e.g. "0406-0017"
func Format(year, month int, seq int64) string {
	return fmt.Sprintf("%02d%02d-%04d", year%100, month, seq)
}

func (s *service) Preview(ctx context.Context, kind string) (string, error) {
	year, month := jalali.YearMonth()
	var counter model.SerialCounter
	err := s.db.WithContext(ctx).First(&counter, "key = ?", CounterKey(kind, year, month)).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return Format(year, month, counter.Value+1), nil
}

func (s *service) Next(ctx context.Context, kind string) (string, error) {
	year, month := jalali.YearMonth()
	key := CounterKey(kind, year, month)

	var value int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter model.SerialCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = model.SerialCounter{Key: key}
			if createErr := tx.Create(&counter).Error; createErr != nil {
				return createErr
			}
		} else if err != nil {
			return err
		}

		counter.Value++
		value = counter.Value
		return tx.Save(&counter).Error
	})
	if err != nil {
		return "", err
	}

	return Format(year, month, value), nil
}
