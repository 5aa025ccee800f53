package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUnwrapsApplicationErrors(t *testing.T) {
	notFound := NotFound("gym %d not found", 7)
	wrapped := fmt.Errorf("loading gym: %w", notFound)

	got := From(wrapped)

	assert.Same(t, notFound, got)
	assert.Equal(t, CodeNotFoundEntity, got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
	assert.Equal(t, "gym 7 not found", got.Error())
}

func TestFromDegradesToUnknown(t *testing.T) {
	got := From(errors.New("connection reset"))

	assert.Equal(t, CodeUnknown, got.Code)
	assert.Equal(t, ReasonUnknown, got.Reason)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
}

func TestFixedCodes(t *testing.T) {
	cases := []struct {
		err    *Error
		code   Code
		status int
	}{
		{AlreadyExists("dup"), 4002, http.StatusConflict},
		{UnsupportedInterval("decade"), 4003, http.StatusBadRequest},
		{IllegalArgument("bad"), 4004, http.StatusBadRequest},
		{Unknown(""), 4000, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code, tc.err.Reason)
		assert.Equal(t, tc.status, tc.err.HTTPStatus, tc.err.Reason)
	}
}

func TestValidationCarriesDetails(t *testing.T) {
	err := Validation(map[string]string{"name": "name is required"})

	assert.Equal(t, CodeIllegalRequestArgument, err.Code)
	assert.Equal(t, "name is required", err.Details["name"])
}
