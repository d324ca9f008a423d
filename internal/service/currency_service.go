package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"panelapi/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Rate string `json:"rate" binding:"required"` // decimal string, rials per unit
}

type UpdateCurrencyRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type CurrencyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type CurrencyService interface {
	ListCurrencies(ctx context.Context) ([]CurrencyResponse, error)
	CreateCurrency(ctx context.Context, req CreateCurrencyRequest) (*CurrencyResponse, error)
	UpdateCurrency(ctx context.Context, id string, req UpdateCurrencyRequest) (*CurrencyResponse, error)
	DeleteCurrency(ctx context.Context, id string) error
}

type currencyService struct {
	db *gorm.DB
}

func NewCurrencyService(db *gorm.DB) CurrencyService {
	return &currencyService{db: db}
}

func toCurrencyResponse(c model.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:   c.ID.String(),
		Code: c.Code,
		Name: c.Name,
		Rate: c.Rate.String(),
	}
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]CurrencyResponse, error) {
	var currencies []model.Currency
	if err := s.db.WithContext(ctx).Order("code ASC").Find(&currencies).Error; err != nil {
		return nil, err
	}
	responses := make([]CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		responses = append(responses, toCurrencyResponse(c))
	}
	return responses, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req CreateCurrencyRequest) (*CurrencyResponse, error) {
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate: %w", err)
	}
	if rate.Sign() <= 0 {
		return nil, errors.New("rate must be positive")
	}

	currency := model.Currency{
		Code: strings.ToUpper(strings.TrimSpace(req.Code)),
		Name: strings.TrimSpace(req.Name),
		Rate: rate,
	}
	if currency.Code == "" || currency.Name == "" {
		return nil, errors.New("code and name must not be empty")
	}

	if err := s.db.WithContext(ctx).Create(&currency).Error; err != nil {
		return nil, errors.New("currency already exists or could not be created")
	}
	resp := toCurrencyResponse(currency)
	return &resp, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, id string, req UpdateCurrencyRequest) (*CurrencyResponse, error) {
	var currency model.Currency
	if err := s.db.WithContext(ctx).First(&currency, "id = ?", id).Error; err != nil {
		return nil, errors.New("currency not found")
	}

	if req.Name != "" {
		currency.Name = strings.TrimSpace(req.Name)
	}
	if req.Rate != "" {
		rate, err := decimal.NewFromString(req.Rate)
		if err != nil {
			return nil, fmt.Errorf("invalid rate: %w", err)
		}
		if rate.Sign() <= 0 {
			return nil, errors.New("rate must be positive")
		}
		currency.Rate = rate
	}

	if err := s.db.WithContext(ctx).Save(&currency).Error; err != nil {
		return nil, err
	}
	resp := toCurrencyResponse(currency)
	return &resp, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Currency{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("currency not found")
	}
	return nil
}
