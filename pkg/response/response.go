package response

import (
	"encoding/json"
	"net/http"

	"self-fitness/pkg/apperror"
)

const (
	MessageSuccess = "success"
	MessageError   = "error"
)

type Response struct {
	Status  apperror.Code `json:"status"`
	Message string        `json:"message"`
	Data    interface{}   `json:"data"`
	Error   *ErrorBody    `json:"error"`
}

type ErrorBody struct {
	Reason  string            `json:"reason"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, Response{
		Status:  apperror.CodeSuccess,
		Message: MessageSuccess,
		Data:    data,
	})
}

// Error renders err with its own HTTP status and application code.
func Error(w http.ResponseWriter, err *apperror.Error) {
	JSON(w, err.HTTPStatus, Response{
		Status:  err.Code,
		Message: MessageError,
		Error: &ErrorBody{
			Reason:  err.Reason,
			Message: err.Message,
			Details: err.Details,
		},
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	Error(w, apperror.Validation(details))
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, apperror.IllegalArgument("%s", message))
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, apperror.Unauthorized(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, apperror.Forbidden(message))
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, apperror.NotFound("%s", message))
}

func MethodNotAllowed(w http.ResponseWriter, message string) {
	Error(w, apperror.MethodNotAllowed(message))
}

func TooManyRequests(w http.ResponseWriter, message string) {
	Error(w, apperror.TooManyRequests(message))
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, apperror.Unknown(message))
}
