package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type RoutineHandler struct {
	routineUsecase usecase.RoutineUsecase
	validator      *validator.CustomValidator
}

func NewRoutineHandler(routineUsecase usecase.RoutineUsecase, validator *validator.CustomValidator) *RoutineHandler {
	return &RoutineHandler{
		routineUsecase: routineUsecase,
		validator:      validator,
	}
}

// CreateRoutine creates a routine bound to the workout in workoutId.
func (h *RoutineHandler) CreateRoutine(w http.ResponseWriter, r *http.Request) {
	var req dto.RoutineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	routine, err := h.routineUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, routine)
}

// CreateTemplate creates a reusable routine that belongs to no workout.
func (h *RoutineHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.RoutineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	routine, err := h.routineUsecase.CreateTemplate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, routine)
}

func (h *RoutineHandler) UpdateRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.RoutineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	routine, err := h.routineUsecase.Update(r.Context(), routineID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, routine)
}

func (h *RoutineHandler) GetRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	routine, err := h.routineUsecase.GetByID(r.Context(), routineID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, routine)
}

func (h *RoutineHandler) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.routineUsecase.Delete(r.Context(), routineID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

// GetAllRoutines pages routines, newest first unless ?sort says otherwise.
func (h *RoutineHandler) GetAllRoutines(w http.ResponseWriter, r *http.Request) {
	page, err := h.routineUsecase.GetPage(r.Context(), r.URL.Query().Get("name"), pageRequest(r, "id,desc"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, page)
}

func (h *RoutineHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.SlotRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	slot, err := h.routineUsecase.AddSlot(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, slot)
}
