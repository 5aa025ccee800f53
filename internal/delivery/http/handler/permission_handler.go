package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type PermissionHandler struct {
	permissionUsecase usecase.PermissionUsecase
	validator         *validator.CustomValidator
}

func NewPermissionHandler(permissionUsecase usecase.PermissionUsecase, validator *validator.CustomValidator) *PermissionHandler {
	return &PermissionHandler{
		permissionUsecase: permissionUsecase,
		validator:         validator,
	}
}

func (h *PermissionHandler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.PermissionCreateRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	permission, err := h.permissionUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, permission)
}

func (h *PermissionHandler) GetAllPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.permissionUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, permissions)
}

func (h *PermissionHandler) GetPermission(w http.ResponseWriter, r *http.Request) {
	permissionID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	permission, err := h.permissionUsecase.GetByID(r.Context(), permissionID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, permission)
}
