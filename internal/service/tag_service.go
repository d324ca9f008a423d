package service

import (
	"context"
	"errors"
	"strings"

	"panelapi/internal/model"

	"gorm.io/gorm"
)

type CreateTagRequest struct {
	Label string `json:"label" binding:"required"`
}

type TagResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type TagService interface {
	ListTags(ctx context.Context) ([]TagResponse, error)
	CreateTag(ctx context.Context, req CreateTagRequest) (*TagResponse, error)
	UpdateTag(ctx context.Context, id string, req CreateTagRequest) (*TagResponse, error)
	DeleteTag(ctx context.Context, id string) error
}

type tagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) TagService {
	return &tagService{db: db}
}

// NormalizeLabel is the duplicate-check key: trimmed, lowercased, internal
// whitespace collapsed to single spaces.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

func (s *tagService) ListTags(ctx context.Context) ([]TagResponse, error) {
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Order("label ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	responses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, TagResponse{ID: t.ID.String(), Label: t.Label})
	}
	return responses, nil
}

func (s *tagService) CreateTag(ctx context.Context, req CreateTagRequest) (*TagResponse, error) {
	normalized := NormalizeLabel(req.Label)
	if normalized == "" {
		return nil, errors.New("label must not be empty")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Tag{}).Where("normalized_label = ?", normalized).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("tag label already exists")
	}

	tag := model.Tag{Label: strings.TrimSpace(req.Label), NormalizedLabel: normalized}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, err
	}
	return &TagResponse{ID: tag.ID.String(), Label: tag.Label}, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id string, req CreateTagRequest) (*TagResponse, error) {
	var tag model.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, errors.New("tag not found")
	}

	normalized := NormalizeLabel(req.Label)
	if normalized == "" {
		return nil, errors.New("label must not be empty")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Tag{}).
		Where("normalized_label = ? AND id <> ?", normalized, tag.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("tag label already exists")
	}

	tag.Label = strings.TrimSpace(req.Label)
	tag.NormalizedLabel = normalized
	if err := s.db.WithContext(ctx).Save(&tag).Error; err != nil {
		return nil, err
	}
	return &TagResponse{ID: tag.ID.String(), Label: tag.Label}, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("tag not found")
	}
	return nil
}
