package converter

import (
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Nickname:    user.Nickname,
		Roles:       user.RoleNames(),
		Authorities: user.Authorities(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}

	permissions := make([]string, len(role.Permissions))
	for i, p := range role.Permissions {
		permissions[i] = p.Name
	}

	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: permissions,
	}
}

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *RoleToResponse(&roles[i])
	}
	return responses
}

func PermissionToResponse(permission *entity.Permission) *dto.PermissionResponse {
	if permission == nil {
		return nil
	}
	return &dto.PermissionResponse{ID: permission.ID, Name: permission.Name}
}

func PermissionsToResponses(permissions []entity.Permission) []dto.PermissionResponse {
	responses := make([]dto.PermissionResponse, len(permissions))
	for i := range permissions {
		responses[i] = *PermissionToResponse(&permissions[i])
	}
	return responses
}
