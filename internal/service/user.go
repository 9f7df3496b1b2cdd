package service

import (
	"context"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// UserService covers staff account management.
type UserService struct {
	backend ports.Backend
}

// NewUserService constructs a UserService.
func NewUserService(backend ports.Backend) *UserService {
	return &UserService{backend: backend}
}

func (s *UserService) List(ctx context.Context) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetUsers, nil, nil)
}

// CreateUserInput is the payload for CREATE_USER.
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.CreateUser, in, nil)
}

// UpdateUserInput is a partial update on one user.
type UpdateUserInput struct {
	UserID  string         `json:"userId"`
	Updates map[string]any `json:"updates"`
}

func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateUser, in, nil)
}

// PermissionsInput replaces one user's explicit permission grants.
type PermissionsInput struct {
	UserID      string   `json:"userId"`
	Permissions []string `json:"permissions"`
}

func (s *UserService) UpdatePermissions(ctx context.Context, in PermissionsInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.UpdateUserPermissions, in, nil)
}

type userPayload struct {
	UserID string `json:"userId"`
}

func (s *UserService) Deactivate(ctx context.Context, userID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.DeactivateUser, userPayload{UserID: userID}, nil)
}

func (s *UserService) Permissions(ctx context.Context, userID string) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetUserPermissions, userPayload{UserID: userID}, nil)
}
