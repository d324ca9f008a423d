package service

import (
	"context"
	"errors"
	"strings"

	"panelapi/internal/middleware"
	"panelapi/internal/model"
	"panelapi/internal/workflow"

	"gorm.io/gorm"
)

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRolePermissionsRequest struct {
	PermissionCodes []string `json:"permission_codes" binding:"required"`
}

type PermissionResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	IsSystem    bool                 `json:"is_system"`
	Permissions []PermissionResponse `json:"permissions"`
}

type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest) (*RoleResponse, error)
	SeedDefaults(ctx context.Context) error
}

type roleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) RoleService {
	return &roleService{db: db}
}

func toPermissionResponse(p model.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID.String(), Code: p.Code, Name: p.Name, Group: p.Group}
}

func toRoleResponse(r model.Role) RoleResponse {
	resp := RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		IsSystem:    r.IsSystem,
	}
	for _, p := range r.Permissions {
		resp.Permissions = append(resp.Permissions, toPermissionResponse(p))
	}
	return resp
}

func (s *roleService) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	var roles []model.Role
	if err := s.db.WithContext(ctx).Preload("Permissions").Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	responses := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}
	return responses, nil
}

func (s *roleService) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		return nil, errors.New("slug must not be empty")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Role{}).
		Where("name = ? OR slug = ?", req.Name, slug).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("role name or slug already exists")
	}

	role := model.Role{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&role).Error; err != nil {
		return nil, err
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	var role model.Role
	if err := s.db.WithContext(ctx).Preload("Permissions").First(&role, "id = ?", id).Error; err != nil {
		return nil, errors.New("role not found")
	}

	if req.Name != "" {
		role.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := s.db.WithContext(ctx).Save(&role).Error; err != nil {
		return nil, err
	}

	middleware.ClearPermissionCache(role.Slug)
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id string) error {
	var role model.Role
	if err := s.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return errors.New("role not found")
	}
	if role.IsSystem {
		return errors.New("system roles cannot be deleted")
	}

	// Reject deletion while any user still occupies the position
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("positions @> ?", `["`+role.Slug+`"]`).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("role is still assigned to users")
	}

	if err := s.db.WithContext(ctx).Delete(&role).Error; err != nil {
		return err
	}
	middleware.ClearPermissionCache(role.Slug)
	return nil
}

func (s *roleService) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	var permissions []model.Permission
	if err := s.db.WithContext(ctx).Order("\"group\" ASC, code ASC").Find(&permissions).Error; err != nil {
		return nil, err
	}
	responses := make([]PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, toPermissionResponse(p))
	}
	return responses, nil
}

func (s *roleService) UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest) (*RoleResponse, error) {
	var role model.Role
	if err := s.db.WithContext(ctx).Preload("Permissions").First(&role, "id = ?", roleID).Error; err != nil {
		return nil, errors.New("role not found")
	}

	var permissions []model.Permission
	if len(req.PermissionCodes) > 0 {
		if err := s.db.WithContext(ctx).Find(&permissions, "code IN ?", req.PermissionCodes).Error; err != nil {
			return nil, err
		}
		if len(permissions) != len(req.PermissionCodes) {
			return nil, errors.New("one or more permission codes not found")
		}
	}

	if err := s.db.WithContext(ctx).Model(&role).Association("Permissions").Replace(permissions); err != nil {
		return nil, err
	}

	middleware.ClearPermissionCache(role.Slug)
	role.Permissions = permissions
	resp := toRoleResponse(role)
	return &resp, nil
}

// SeedDefaults creates the workflow-position roles and the base permission
// set on first boot. Safe to run repeatedly.
func (s *roleService) SeedDefaults(ctx context.Context) error {
	permissions := []model.Permission{
		{Code: "users.read", Name: "مشاهده کاربران", Group: "users"},
		{Code: "users.write", Name: "ویرایش کاربران", Group: "users"},
		{Code: "users.delete", Name: "حذف کاربران", Group: "users"},
		{Code: "requests.read", Name: "مشاهده درخواست‌ها", Group: "requests"},
		{Code: "requests.write", Name: "ثبت درخواست", Group: "requests"},
		{Code: "requests.approve", Name: "تأیید درخواست", Group: "requests"},
		{Code: "requests.delete", Name: "حذف درخواست", Group: "requests"},
		{Code: "requests.import", Name: "ورود درخواست قدیمی", Group: "requests"},
		{Code: "collections.read", Name: "مشاهده اطلاعات پایه", Group: "collections"},
		{Code: "collections.write", Name: "ویرایش اطلاعات پایه", Group: "collections"},
		{Code: "projects.read", Name: "مشاهده پروژه‌ها", Group: "projects"},
		{Code: "projects.write", Name: "ویرایش پروژه‌ها", Group: "projects"},
		{Code: "reports.read", Name: "مشاهده گزارش‌ها", Group: "reports"},
		{Code: "reports.write", Name: "ثبت گزارش روزانه", Group: "reports"},
		{Code: "letters.read", Name: "مشاهده نامه‌ها", Group: "letters"},
		{Code: "letters.write", Name: "ثبت نامه", Group: "letters"},
		{Code: "audit.read", Name: "مشاهده سوابق", Group: "audit"},
	}
	for _, p := range permissions {
		var existing model.Permission
		if err := s.db.WithContext(ctx).
			Where(model.Permission{Code: p.Code}).
			Attrs(p).
			FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}

	// One role per workflow step so user positions always have a slug to
	// validate against
	for _, scope := range workflow.Scopes() {
		for _, step := range workflow.SequenceFor(scope) {
			if step.Key == workflow.StepPaymentDone {
				continue
			}
			var existing model.Role
			if err := s.db.WithContext(ctx).
				Where(model.Role{Slug: string(step.Key)}).
				Attrs(model.Role{Name: step.Label, Slug: string(step.Key), IsSystem: true}).
				FirstOrCreate(&existing).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
