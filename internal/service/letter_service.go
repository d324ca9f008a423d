package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"panelapi/internal/jalali"
	"panelapi/internal/model"
	"panelapi/internal/serial"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateLetterRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Recipient  string `json:"recipient"`
	Body       string `json:"body"`
	LetterDate string `json:"letter_date"` // Jalali YYYY-MM-DD, defaults to today
}

type UpdateLetterRequest struct {
	Subject   string `json:"subject"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}

type LetterResponse struct {
	ID         string `json:"id"`
	Serial     string `json:"serial"`
	Subject    string `json:"subject"`
	Recipient  string `json:"recipient"`
	Body       string `json:"body"`
	LetterDate string `json:"letter_date"`
	CreatedAt  string `json:"created_at"`
}

type LetterService interface {
	ListLetters(ctx context.Context, page, limit int) ([]LetterResponse, int64, error)
	GetLetter(ctx context.Context, id string) (*LetterResponse, error)
	CreateLetter(ctx context.Context, userID string, req CreateLetterRequest) (*LetterResponse, error)
	UpdateLetter(ctx context.Context, id string, req UpdateLetterRequest) (*LetterResponse, error)
	DeleteLetter(ctx context.Context, id string) error
	PreviewSerial(ctx context.Context) (string, error)
}

type letterService struct {
	db      *gorm.DB
	serials serial.Service
}

func NewLetterService(db *gorm.DB, serials serial.Service) LetterService {
	return &letterService{db: db, serials: serials}
}

func toLetterResponse(l *model.Letter) *LetterResponse {
	return &LetterResponse{
		ID:         l.ID.String(),
		Serial:     l.Serial,
		Subject:    l.Subject,
		Recipient:  l.Recipient,
		Body:       l.Body,
		LetterDate: l.LetterDate,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
}

func (s *letterService) ListLetters(ctx context.Context, page, limit int) ([]LetterResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Letter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var letters []model.Letter
	offset := (page - 1) * limit
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&letters).Error
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LetterResponse, 0, len(letters))
	for i := range letters {
		responses = append(responses, *toLetterResponse(&letters[i]))
	}
	return responses, total, nil
}

func (s *letterService) GetLetter(ctx context.Context, id string) (*LetterResponse, error) {
	var letter model.Letter
	if err := s.db.WithContext(ctx).First(&letter, "id = ?", id).Error; err != nil {
		return nil, errors.New("letter not found")
	}
	return toLetterResponse(&letter), nil
}

func (s *letterService) CreateLetter(ctx context.Context, userID string, req CreateLetterRequest) (*LetterResponse, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, errors.New("subject must not be empty")
	}

	serialNo, err := s.serials.Next(ctx, serial.KindLetter)
	if err != nil {
		return nil, err
	}

	letterDate := req.LetterDate
	if letterDate == "" {
		letterDate = jalali.Today()
	}

	var createdBy *uuid.UUID
	if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
		createdBy = &parsed
	}

	letter := model.Letter{
		Serial:     serialNo,
		Subject:    subject,
		Recipient:  strings.TrimSpace(req.Recipient),
		Body:       req.Body,
		LetterDate: letterDate,
		CreatedBy:  createdBy,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if createErr := tx.Create(&letter).Error; createErr != nil {
			return createErr
		}
		details, _ := json.Marshal(map[string]string{"serial": letter.Serial, "subject": subject})
		audit := model.AuditLog{
			UserID:     createdBy,
			Action:     model.ActionCreateLetter,
			EntityID:   letter.ID.String(),
			EntityName: letter.Serial,
			Details:    string(details),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}

	return toLetterResponse(&letter), nil
}

func (s *letterService) UpdateLetter(ctx context.Context, id string, req UpdateLetterRequest) (*LetterResponse, error) {
	var letter model.Letter
	if err := s.db.WithContext(ctx).First(&letter, "id = ?", id).Error; err != nil {
		return nil, errors.New("letter not found")
	}

	if req.Subject != "" {
		letter.Subject = strings.TrimSpace(req.Subject)
	}
	if req.Recipient != "" {
		letter.Recipient = strings.TrimSpace(req.Recipient)
	}
	if req.Body != "" {
		letter.Body = req.Body
	}

	if err := s.db.WithContext(ctx).Save(&letter).Error; err != nil {
		return nil, err
	}
	return toLetterResponse(&letter), nil
}

func (s *letterService) DeleteLetter(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Letter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("letter not found")
	}
	return nil
}

func (s *letterService) PreviewSerial(ctx context.Context) (string, error) {
	return s.serials.Preview(ctx, serial.KindLetter)
}
