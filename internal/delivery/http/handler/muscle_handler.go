package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type MuscleHandler struct {
	muscleUsecase usecase.MuscleUsecase
	validator     *validator.CustomValidator
}

func NewMuscleHandler(muscleUsecase usecase.MuscleUsecase, validator *validator.CustomValidator) *MuscleHandler {
	return &MuscleHandler{
		muscleUsecase: muscleUsecase,
		validator:     validator,
	}
}

func (h *MuscleHandler) CreateMuscle(w http.ResponseWriter, r *http.Request) {
	var req dto.MuscleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	muscle, err := h.muscleUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, muscle)
}

func (h *MuscleHandler) UpdateMuscle(w http.ResponseWriter, r *http.Request) {
	muscleID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.MuscleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	muscle, err := h.muscleUsecase.Update(r.Context(), muscleID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, muscle)
}

func (h *MuscleHandler) GetMuscle(w http.ResponseWriter, r *http.Request) {
	muscleID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	muscle, err := h.muscleUsecase.GetByID(r.Context(), muscleID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, muscle)
}

func (h *MuscleHandler) DeleteMuscle(w http.ResponseWriter, r *http.Request) {
	muscleID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.muscleUsecase.Delete(r.Context(), muscleID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *MuscleHandler) GetAllMuscles(w http.ResponseWriter, r *http.Request) {
	page, err := h.muscleUsecase.GetPage(r.Context(), r.URL.Query().Get("name"), pageRequest(r, "id,asc"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, page)
}
