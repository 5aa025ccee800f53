package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

type GymHandler struct {
	gymUsecase usecase.GymUsecase
	validator  *validator.CustomValidator
}

func NewGymHandler(gymUsecase usecase.GymUsecase, validator *validator.CustomValidator) *GymHandler {
	return &GymHandler{
		gymUsecase: gymUsecase,
		validator:  validator,
	}
}

func (h *GymHandler) CreateGym(w http.ResponseWriter, r *http.Request) {
	var req dto.GymRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	gym, err := h.gymUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, gym)
}

func (h *GymHandler) UpdateGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req dto.GymRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	gym, err := h.gymUsecase.Update(r.Context(), gymID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, gym)
}

func (h *GymHandler) GetGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	gym, err := h.gymUsecase.GetByID(r.Context(), gymID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, gym)
}

func (h *GymHandler) DeleteGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.gymUsecase.Delete(r.Context(), gymID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

// GetAllGyms pages gyms: ?page=0&size=20&sort=id,asc&name=
func (h *GymHandler) GetAllGyms(w http.ResponseWriter, r *http.Request) {
	page, err := h.gymUsecase.GetPage(r.Context(), r.URL.Query().Get("name"), pageRequest(r, "id,asc"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, page)
}
