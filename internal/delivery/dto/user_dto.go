package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserCreateRequest struct {
	Username  string   `json:"username" validate:"required,notblank,min=3,max=100"`
	Password  string   `json:"password" validate:"required,min=6,max=72"`
	Email     *string  `json:"email" validate:"omitempty,email,max=255"`
	RoleNames []string `json:"roleNames"`
}

// UserUpdateRequest only changes the fields that are present.
type UserUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,notblank,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
}

type AssignRoleRequest struct {
	RoleName string `json:"roleName" validate:"required,notblank"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       *string   `json:"email"`
	Nickname    string    `json:"nickname,omitempty"`
	Roles       []string  `json:"roles"`
	Authorities []string  `json:"authorities,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoleCreateRequest struct {
	Name            string   `json:"name" validate:"required,notblank,min=2,max=50"`
	PermissionNames []string `json:"permissionNames"`
}

type AssignPermissionRequest struct {
	PermissionName string `json:"permissionName" validate:"required,notblank"`
}

type RoleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type PermissionCreateRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type PermissionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
