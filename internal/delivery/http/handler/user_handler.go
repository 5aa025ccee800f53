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

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.UserCreateRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, users)
}

func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.UpdateCurrent(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, user)
}

func (h *UserHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.userUsecase.AssignRole)
}

func (h *UserHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.userUsecase.RemoveRole)
}

type roleChange func(ctx context.Context, actorID, userID uuid.UUID, req *dto.AssignRoleRequest) (*dto.UserResponse, error)

func (h *UserHandler) changeRole(w http.ResponseWriter, r *http.Request, change roleChange) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AssignRoleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := change(r.Context(), actorID, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, user)
}
