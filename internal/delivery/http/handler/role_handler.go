package handler

import (
	"context"
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"

	"github.com/google/uuid"
)

type RoleHandler struct {
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.RoleCreateRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	role, err := h.roleUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, role)
}

func (h *RoleHandler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, roles)
}

func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	role, err := h.roleUsecase.GetByID(r.Context(), roleID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, role)
}

func (h *RoleHandler) AssignPermission(w http.ResponseWriter, r *http.Request) {
	h.changePermission(w, r, h.roleUsecase.AssignPermission)
}

func (h *RoleHandler) RemovePermission(w http.ResponseWriter, r *http.Request) {
	h.changePermission(w, r, h.roleUsecase.RemovePermission)
}

func (h *RoleHandler) changePermission(
	w http.ResponseWriter,
	r *http.Request,
	change func(context.Context, uuid.UUID, int64, *dto.AssignPermissionRequest) (*dto.RoleResponse, error),
) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	roleID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.AssignPermissionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	role, err := change(r.Context(), actorID, roleID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, role)
}
