package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"self-fitness/internal/delivery/http/middleware"
	"self-fitness/pkg/apperror"
	"self-fitness/pkg/pagination"
	"self-fitness/pkg/response"
	"self-fitness/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// writeError renders any error returned by a usecase. Errors that carry no
// application code degrade to 4000 Unknown.
func writeError(w http.ResponseWriter, err error) {
	response.Error(w, apperror.From(err))
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return uuid.Nil, false
	}
	return userID, true
}

// pageRequest reads page, size and sort from the query string. Malformed
// numbers fall back to the defaults.
func pageRequest(r *http.Request, defaultSort string) pagination.Pageable {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = pagination.DefaultPage
	}
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil {
		size = pagination.DefaultSize
	}
	sort := q.Get("sort")
	if sort == "" {
		sort = defaultSort
	}
	return pagination.NewPageable(page, size, sort)
}
