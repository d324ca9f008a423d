package repository

import (
	"context"

	"panelapi/internal/model"

	"gorm.io/gorm"
)

// DailyReportRepository defines data access for daily reports
type DailyReportRepository interface {
	Create(ctx context.Context, report *model.DailyReport) error
	GetByID(ctx context.Context, id string) (*model.DailyReport, error)
	List(ctx context.Context, projectID string, page, limit int) ([]model.DailyReport, int64, error)
	Update(ctx context.Context, report *model.DailyReport) error
	Delete(ctx context.Context, id string) error
	ReplaceTags(ctx context.Context, report *model.DailyReport, tags []model.Tag) error
}

type dailyReportRepository struct {
	db *gorm.DB
}

func NewDailyReportRepository(db *gorm.DB) DailyReportRepository {
	return &dailyReportRepository{db: db}
}

func (r *dailyReportRepository) Create(ctx context.Context, report *model.DailyReport) error {
	return GetDB(ctx, r.db).Create(report).Error
}

func (r *dailyReportRepository) GetByID(ctx context.Context, id string) (*model.DailyReport, error) {
	var report model.DailyReport
	err := GetDB(ctx, r.db).
		Preload("Tags").
		Preload("Attachments").
		Preload("Project").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *dailyReportRepository) List(ctx context.Context, projectID string, page, limit int) ([]model.DailyReport, int64, error) {
	query := GetDB(ctx, r.db).Model(&model.DailyReport{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var reports []model.DailyReport
	err := query.
		Preload("Tags").
		Preload("Attachments").
		Order("report_date DESC").
		Offset(offset).Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *dailyReportRepository) Update(ctx context.Context, report *model.DailyReport) error {
	return GetDB(ctx, r.db).Save(report).Error
}

func (r *dailyReportRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.DailyReport{}).Error
}

func (r *dailyReportRepository) ReplaceTags(ctx context.Context, report *model.DailyReport, tags []model.Tag) error {
	return GetDB(ctx, r.db).Model(report).Association("Tags").Replace(tags)
}
