package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type ExerciseHandler struct {
	exerciseUsecase usecase.ExerciseUsecase
	validator       *validator.CustomValidator
}

func NewExerciseHandler(exerciseUsecase usecase.ExerciseUsecase, validator *validator.CustomValidator) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseUsecase: exerciseUsecase,
		validator:       validator,
	}
}

func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req dto.ExerciseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	exercise, err := h.exerciseUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, exercise)
}

func (h *ExerciseHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.ExerciseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	exercise, err := h.exerciseUsecase.Update(r.Context(), exerciseID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseUsecase.GetByID(r.Context(), exerciseID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.exerciseUsecase.Delete(r.Context(), exerciseID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *ExerciseHandler) GetAllExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, exercises)
}
