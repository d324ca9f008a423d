package repository

import (
	"context"

	"panelapi/internal/model"

	"gorm.io/gorm"
)

// RequestFilter narrows payment-request listings
type RequestFilter struct {
	Scope     string
	Status    string
	ProjectID string
	Page      int
	Limit     int
}

// PaymentRequestRepository defines data access for payment requests and
// their action history
type PaymentRequestRepository interface {
	Create(ctx context.Context, req *model.PaymentRequest) error
	GetByID(ctx context.Context, id string) (*model.PaymentRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]model.PaymentRequest, int64, error)
	Update(ctx context.Context, req *model.PaymentRequest) error
	Delete(ctx context.Context, id string) error
	AppendAction(ctx context.Context, action *model.PaymentAction) error
}

type paymentRequestRepository struct {
	db *gorm.DB
}

func NewPaymentRequestRepository(db *gorm.DB) PaymentRequestRepository {
	return &paymentRequestRepository{db: db}
}

func (r *paymentRequestRepository) Create(ctx context.Context, req *model.PaymentRequest) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *paymentRequestRepository) GetByID(ctx context.Context, id string) (*model.PaymentRequest, error) {
	var req model.PaymentRequest
	err := GetDB(ctx, r.db).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_actions.created_at ASC")
		}).
		Preload("Project").
		Preload("Requester").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *paymentRequestRepository) List(ctx context.Context, filter RequestFilter) ([]model.PaymentRequest, int64, error) {
	query := GetDB(ctx, r.db).Model(&model.PaymentRequest{})
	if filter.Scope != "" {
		query = query.Where("scope = ?", filter.Scope)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var requests []model.PaymentRequest
	err := query.
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_actions.created_at ASC")
		}).
		Preload("Project").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *paymentRequestRepository) Update(ctx context.Context, req *model.PaymentRequest) error {
	return GetDB(ctx, r.db).Save(req).Error
}

func (r *paymentRequestRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PaymentRequest{}).Error
}

func (r *paymentRequestRepository) AppendAction(ctx context.Context, action *model.PaymentAction) error {
	return GetDB(ctx, r.db).Create(action).Error
}
