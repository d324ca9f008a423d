package service

import (
	"context"
	"time"

	"panelapi/internal/model"
	"panelapi/internal/workflow"

	"gorm.io/gorm"
)

type ScopeTotal struct {
	Scope  string `json:"scope"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
	Total  string `json:"total"` // decimal sum, rials
}

type BudgetReportResponse struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Totals    []ScopeTotal `json:"totals"`
	PaidTotal string       `json:"paid_total"`
}

// ReportService aggregates payment-request amounts per scope and status
type ReportService interface {
	BudgetReport(ctx context.Context, from, to time.Time) (BudgetReportResponse, error)
}

type reportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) BudgetReport(ctx context.Context, from, to time.Time) (BudgetReportResponse, error) {
	response := BudgetReportResponse{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	}

	type row struct {
		Scope  string
		Status string
		Count  int64
		Total  string
	}
	var rows []row
	err := s.db.WithContext(ctx).Table("payment_requests").
		Select("scope, status, COUNT(*) as count, COALESCE(SUM(amount), 0)::text as total").
		Where("deleted_at IS NULL AND created_at >= ? AND created_at <= ?", from, to).
		Group("scope, status").
		Order("scope, status").
		Scan(&rows).Error
	if err != nil {
		return BudgetReportResponse{}, err
	}

	for _, r := range rows {
		if !workflow.Scope(r.Scope).IsValid() {
			continue
		}
		response.Totals = append(response.Totals, ScopeTotal{
			Scope:  r.Scope,
			Status: r.Status,
			Count:  r.Count,
			Total:  r.Total,
		})
	}

	var paid struct {
		Total string
	}
	err = s.db.WithContext(ctx).Table("payment_requests").
		Select("COALESCE(SUM(amount), 0)::text as total").
		Where("deleted_at IS NULL AND status = ? AND created_at >= ? AND created_at <= ?",
			model.RequestApproved, from, to).
		Scan(&paid).Error
	if err != nil {
		return BudgetReportResponse{}, err
	}
	response.PaidTotal = paid.Total

	return response, nil
}
