package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type WorkoutHandler struct {
	workoutUsecase usecase.WorkoutUsecase
	validator      *validator.CustomValidator
}

func NewWorkoutHandler(workoutUsecase usecase.WorkoutUsecase, validator *validator.CustomValidator) *WorkoutHandler {
	return &WorkoutHandler{
		workoutUsecase: workoutUsecase,
		validator:      validator,
	}
}

// StartWorkout creates a workout; startTime defaults to now.
func (h *WorkoutHandler) StartWorkout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.WorkoutRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	workout, err := h.workoutUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, workout)
}

func (h *WorkoutHandler) GetAllWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	workout, err := h.workoutUsecase.GetByID(r.Context(), workoutID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.WorkoutRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	workout, err := h.workoutUsecase.Update(r.Context(), workoutID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	workoutID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.workoutUsecase.Delete(r.Context(), actorID, workoutID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *WorkoutHandler) StopWorkout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.StopWorkoutRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	workout, err := h.workoutUsecase.Stop(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) GetInProcessWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.workoutUsecase.InProcess(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, workout)
}

// GetStats summarizes the current week, month or year.
func (h *WorkoutHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.workoutUsecase.Stats(r.Context(), r.URL.Query().Get("interval"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, stats)
}
