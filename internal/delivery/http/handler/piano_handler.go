package handler

import (
	"net/http"

	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"
)

// PianoHandler serves tags, pieces, practice sessions and practice records.
type PianoHandler struct {
	tagUsecase      usecase.PianoTagUsecase
	pieceUsecase    usecase.PieceUsecase
	sessionUsecase  usecase.PracticeSessionUsecase
	practiceUsecase usecase.PracticeUsecase
	validator       *validator.CustomValidator
}

func NewPianoHandler(
	tagUsecase usecase.PianoTagUsecase,
	pieceUsecase usecase.PieceUsecase,
	sessionUsecase usecase.PracticeSessionUsecase,
	practiceUsecase usecase.PracticeUsecase,
	validator *validator.CustomValidator,
) *PianoHandler {
	return &PianoHandler{
		tagUsecase:      tagUsecase,
		pieceUsecase:    pieceUsecase,
		sessionUsecase:  sessionUsecase,
		practiceUsecase: practiceUsecase,
		validator:       validator,
	}
}

// CreateTag returns the existing tag when the name is taken.
func (h *PianoHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req dto.PianoTagRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	tag, err := h.tagUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, tag)
}

func (h *PianoHandler) GetAllTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, tags)
}

func (h *PianoHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.tagUsecase.Delete(r.Context(), tagID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *PianoHandler) CreatePiece(w http.ResponseWriter, r *http.Request) {
	var req dto.PieceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	piece, err := h.pieceUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, piece)
}

func (h *PianoHandler) GetAllPieces(w http.ResponseWriter, r *http.Request) {
	pieces, err := h.pieceUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, pieces)
}

func (h *PianoHandler) GetPiece(w http.ResponseWriter, r *http.Request) {
	pieceID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	piece, err := h.pieceUsecase.GetByID(r.Context(), pieceID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, piece)
}

func (h *PianoHandler) CreatePracticeSession(w http.ResponseWriter, r *http.Request) {
	var req dto.PracticeSessionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	session, err := h.sessionUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, session)
}

func (h *PianoHandler) GetAllPracticeSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, sessions)
}

func (h *PianoHandler) GetPracticeSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	session, err := h.sessionUsecase.GetByID(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, session)
}

func (h *PianoHandler) CreatePianoPractice(w http.ResponseWriter, r *http.Request) {
	var req dto.PianoPracticeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practice, err := h.practiceUsecase.CreatePianoPractice(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, practice)
}

func (h *PianoHandler) CreateSolfeggioPractice(w http.ResponseWriter, r *http.Request) {
	var req dto.SolfeggioPracticeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practice, err := h.practiceUsecase.CreateSolfeggioPractice(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, practice)
}
