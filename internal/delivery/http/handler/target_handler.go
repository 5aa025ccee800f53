package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type TargetHandler struct {
	targetUsecase usecase.TargetUsecase
	validator     *validator.CustomValidator
}

func NewTargetHandler(targetUsecase usecase.TargetUsecase, validator *validator.CustomValidator) *TargetHandler {
	return &TargetHandler{
		targetUsecase: targetUsecase,
		validator:     validator,
	}
}

func (h *TargetHandler) CreateTarget(w http.ResponseWriter, r *http.Request) {
	var req dto.TargetRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	target, err := h.targetUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, target)
}

func (h *TargetHandler) GetAllTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.targetUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, targets)
}
