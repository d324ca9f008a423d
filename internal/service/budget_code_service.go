package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"panelapi/internal/model"
	"panelapi/internal/repository"
	"panelapi/internal/workflow"
)

// Fixed per-scope code prefixes; full code = prefix + suffix
var scopePrefixes = map[string]string{
	"office":   "11",
	"site":     "12",
	"finance":  "13",
	"cash":     "14",
	"capex":    "15",
	"projects": "16",
}

var suffixRe = regexp.MustCompile(`^\d{2,6}$`)

type CreateBudgetCodeRequest struct {
	Scope       string `json:"scope" binding:"required,oneof=office site finance cash capex projects"`
	Suffix      string `json:"suffix" binding:"required"`
	Description string `json:"description"`
}

type UpdateBudgetCodeRequest struct {
	Description string `json:"description"`
}

type BudgetCodeResponse struct {
	ID          string `json:"id"`
	Scope       string `json:"scope"`
	Suffix      string `json:"suffix"`
	FullCode    string `json:"full_code"`
	Description string `json:"description"`
}

type BudgetCodeService interface {
	ListBudgetCodes(ctx context.Context, scope string) ([]BudgetCodeResponse, error)
	CreateBudgetCode(ctx context.Context, req CreateBudgetCodeRequest) (*BudgetCodeResponse, error)
	UpdateBudgetCode(ctx context.Context, id string, req UpdateBudgetCodeRequest) (*BudgetCodeResponse, error)
	DeleteBudgetCode(ctx context.Context, id string) error
}

type budgetCodeService struct {
	repo repository.BudgetCodeRepository
}

func NewBudgetCodeService(repo repository.BudgetCodeRepository) BudgetCodeService {
	return &budgetCodeService{repo: repo}
}

// FullCode concatenates the scope's fixed prefix with the suffix
func FullCode(scope, suffix string) string {
	return scopePrefixes[scope] + suffix
}

func toBudgetCodeResponse(code *model.BudgetCode) *BudgetCodeResponse {
	return &BudgetCodeResponse{
		ID:          code.ID.String(),
		Scope:       code.Scope,
		Suffix:      code.Suffix,
		FullCode:    FullCode(code.Scope, code.Suffix),
		Description: code.Description,
	}
}

func (s *budgetCodeService) ListBudgetCodes(ctx context.Context, scope string) ([]BudgetCodeResponse, error) {
	if scope != "" && !workflow.Scope(scope).IsValid() {
		return nil, errors.New("unknown scope")
	}
	codes, err := s.repo.ListByScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	responses := make([]BudgetCodeResponse, 0, len(codes))
	for i := range codes {
		responses = append(responses, *toBudgetCodeResponse(&codes[i]))
	}
	return responses, nil
}

func (s *budgetCodeService) CreateBudgetCode(ctx context.Context, req CreateBudgetCodeRequest) (*BudgetCodeResponse, error) {
	suffix := strings.TrimSpace(req.Suffix)
	if !suffixRe.MatchString(suffix) {
		return nil, errors.New("suffix must be 2-6 digits")
	}

	if _, err := s.repo.GetByScopeAndSuffix(ctx, req.Scope, suffix); err == nil {
		return nil, errors.New("budget code already exists for this scope")
	}

	code := &model.BudgetCode{
		Scope:       req.Scope,
		Suffix:      suffix,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(ctx, code); err != nil {
		return nil, err
	}
	return toBudgetCodeResponse(code), nil
}

func (s *budgetCodeService) UpdateBudgetCode(ctx context.Context, id string, req UpdateBudgetCodeRequest) (*BudgetCodeResponse, error) {
	code, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("budget code not found")
	}

	if req.Description != "" {
		code.Description = strings.TrimSpace(req.Description)
	}

	if err := s.repo.Update(ctx, code); err != nil {
		return nil, err
	}
	return toBudgetCodeResponse(code), nil
}

func (s *budgetCodeService) DeleteBudgetCode(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("budget code not found")
	}
	return s.repo.Delete(ctx, id)
}
