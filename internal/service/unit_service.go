package service

import (
	"context"
	"errors"
	"strings"

	"panelapi/internal/model"

	"gorm.io/gorm"
)

type CreateUnitRequest struct {
	Label string `json:"label" binding:"required"`
}

type UnitResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type UnitService interface {
	ListUnits(ctx context.Context) ([]UnitResponse, error)
	CreateUnit(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error)
	DeleteUnit(ctx context.Context, id string) error
}

type unitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) UnitService {
	return &unitService{db: db}
}

func (s *unitService) ListUnits(ctx context.Context) ([]UnitResponse, error) {
	var units []model.Unit
	if err := s.db.WithContext(ctx).Order("label ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	responses := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		responses = append(responses, UnitResponse{ID: u.ID.String(), Label: u.Label})
	}
	return responses, nil
}

func (s *unitService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, errors.New("label must not be empty")
	}

	unit := model.Unit{Label: label}
	if err := s.db.WithContext(ctx).Create(&unit).Error; err != nil {
		return nil, errors.New("unit already exists or could not be created")
	}
	return &UnitResponse{ID: unit.ID.String(), Label: unit.Label}, nil
}

func (s *unitService) DeleteUnit(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Unit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("unit not found")
	}
	return nil
}
