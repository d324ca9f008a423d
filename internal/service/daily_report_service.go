package service

import (
	"context"
	"errors"
	"time"

	"panelapi/internal/jalali"
	"panelapi/internal/model"
	"panelapi/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentInput struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url"`
}

type CreateDailyReportRequest struct {
	ReportDate  string            `json:"report_date"` // Jalali YYYY-MM-DD; derived from attachments when empty
	Body        string            `json:"body" binding:"required"`
	ProjectID   string            `json:"project_id"`
	TagIDs      []string          `json:"tag_ids"`
	Attachments []AttachmentInput `json:"attachments"`
}

type UpdateDailyReportRequest struct {
	ReportDate string    `json:"report_date"`
	Body       string    `json:"body"`
	TagIDs     *[]string `json:"tag_ids"`
}

type AttachmentResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	FileDate string `json:"file_date"`
	Calendar string `json:"calendar"`
}

type DailyReportResponse struct {
	ID          string               `json:"id"`
	ReportDate  string               `json:"report_date"`
	Body        string               `json:"body"`
	ProjectID   *string              `json:"project_id"`
	Tags        []TagResponse        `json:"tags"`
	Attachments []AttachmentResponse `json:"attachments"`
	CreatedAt   string               `json:"created_at"`
}

type DailyReportService interface {
	ListReports(ctx context.Context, projectID string, page, limit int) ([]DailyReportResponse, int64, error)
	GetReport(ctx context.Context, id string) (*DailyReportResponse, error)
	CreateReport(ctx context.Context, userID string, req CreateDailyReportRequest) (*DailyReportResponse, error)
	UpdateReport(ctx context.Context, id string, req UpdateDailyReportRequest) (*DailyReportResponse, error)
	DeleteReport(ctx context.Context, id string) error
}

type dailyReportService struct {
	repo repository.DailyReportRepository
	db   *gorm.DB
}

func NewDailyReportService(repo repository.DailyReportRepository, db *gorm.DB) DailyReportService {
	return &dailyReportService{repo: repo, db: db}
}

func toDailyReportResponse(r *model.DailyReport) *DailyReportResponse {
	resp := &DailyReportResponse{
		ID:         r.ID.String(),
		ReportDate: r.ReportDate,
		Body:       r.Body,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.ProjectID != nil {
		id := r.ProjectID.String()
		resp.ProjectID = &id
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: t.ID.String(), Label: t.Label})
	}
	for _, a := range r.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:       a.ID.String(),
			FileName: a.FileName,
			FileURL:  a.FileURL,
			FileDate: a.FileDate,
			Calendar: a.Calendar,
		})
	}
	return resp
}

func (s *dailyReportService) ListReports(ctx context.Context, projectID string, page, limit int) ([]DailyReportResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	reports, total, err := s.repo.List(ctx, projectID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DailyReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *toDailyReportResponse(&reports[i]))
	}
	return responses, total, nil
}

func (s *dailyReportService) GetReport(ctx context.Context, id string) (*DailyReportResponse, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("report not found")
	}
	return toDailyReportResponse(report), nil
}

func (s *dailyReportService) loadTags(ctx context.Context, ids []string) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Find(&tags, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, errors.New("one or more tags not found")
	}
	return tags, nil
}

// buildAttachments tags each file with the date found in its name; the first
// attachment carrying a Jalali date can stand in for a missing report date.
func buildAttachments(inputs []AttachmentInput) ([]model.Attachment, string) {
	var derivedDate string
	attachments := make([]model.Attachment, 0, len(inputs))
	for _, in := range inputs {
		att := model.Attachment{FileName: in.FileName, FileURL: in.FileURL}
		if date, cal, ok := jalali.DateFromFilename(in.FileName); ok {
			att.FileDate = date
			att.Calendar = string(cal)
			if derivedDate == "" {
				if cal == jalali.CalendarJalali {
					derivedDate = date
				} else if converted, err := jalali.ToJalali(date); err == nil {
					derivedDate = converted
				}
			}
		}
		attachments = append(attachments, att)
	}
	return attachments, derivedDate
}

func (s *dailyReportService) CreateReport(ctx context.Context, userID string, req CreateDailyReportRequest) (*DailyReportResponse, error) {
	tags, err := s.loadTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	attachments, derivedDate := buildAttachments(req.Attachments)

	reportDate := req.ReportDate
	if reportDate == "" {
		reportDate = derivedDate
	}
	if reportDate == "" {
		reportDate = jalali.Today()
	}

	var projectID *uuid.UUID
	if req.ProjectID != "" {
		parsed, parseErr := uuid.Parse(req.ProjectID)
		if parseErr != nil {
			return nil, errors.New("invalid project_id")
		}
		projectID = &parsed
	}

	var authorID *uuid.UUID
	if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
		authorID = &parsed
	}

	report := &model.DailyReport{
		ReportDate:  reportDate,
		Body:        req.Body,
		ProjectID:   projectID,
		AuthorID:    authorID,
		Tags:        tags,
		Attachments: attachments,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, report.ID.String())
	if err != nil {
		return nil, err
	}
	return toDailyReportResponse(created), nil
}

func (s *dailyReportService) UpdateReport(ctx context.Context, id string, req UpdateDailyReportRequest) (*DailyReportResponse, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("report not found")
	}

	if req.ReportDate != "" {
		report.ReportDate = req.ReportDate
	}
	if req.Body != "" {
		report.Body = req.Body
	}

	if req.TagIDs != nil {
		tags, tagErr := s.loadTags(ctx, *req.TagIDs)
		if tagErr != nil {
			return nil, tagErr
		}
		if err := s.repo.ReplaceTags(ctx, report, tags); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDailyReportResponse(updated), nil
}

func (s *dailyReportService) DeleteReport(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("report not found")
	}
	return s.repo.Delete(ctx, id)
}
