package repository

import (
	"context"

	"panelapi/internal/model"

	"gorm.io/gorm"
)

// BudgetCodeRepository defines data access for budget codes
type BudgetCodeRepository interface {
	Create(ctx context.Context, code *model.BudgetCode) error
	GetByID(ctx context.Context, id string) (*model.BudgetCode, error)
	GetByScopeAndSuffix(ctx context.Context, scope, suffix string) (*model.BudgetCode, error)
	ListByScope(ctx context.Context, scope string) ([]model.BudgetCode, error)
	Update(ctx context.Context, code *model.BudgetCode) error
	Delete(ctx context.Context, id string) error
}

type budgetCodeRepository struct {
	db *gorm.DB
}

func NewBudgetCodeRepository(db *gorm.DB) BudgetCodeRepository {
	return &budgetCodeRepository{db: db}
}

func (r *budgetCodeRepository) Create(ctx context.Context, code *model.BudgetCode) error {
	return GetDB(ctx, r.db).Create(code).Error
}

func (r *budgetCodeRepository) GetByID(ctx context.Context, id string) (*model.BudgetCode, error) {
	var code model.BudgetCode
	if err := GetDB(ctx, r.db).First(&code, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *budgetCodeRepository) GetByScopeAndSuffix(ctx context.Context, scope, suffix string) (*model.BudgetCode, error) {
	var code model.BudgetCode
	if err := GetDB(ctx, r.db).First(&code, "scope = ? AND suffix = ?", scope, suffix).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *budgetCodeRepository) ListByScope(ctx context.Context, scope string) ([]model.BudgetCode, error) {
	var codes []model.BudgetCode
	query := GetDB(ctx, r.db).Order("suffix ASC")
	if scope != "" {
		query = query.Where("scope = ?", scope)
	}
	if err := query.Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *budgetCodeRepository) Update(ctx context.Context, code *model.BudgetCode) error {
	return GetDB(ctx, r.db).Save(code).Error
}

func (r *budgetCodeRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.BudgetCode{}).Error
}
