package middleware

import (
	"net/http"
	"runtime/debug"

	"self-fitness/pkg/apperror"
	"self-fitness/pkg/response"

	"github.com/sirupsen/logrus"
)

// Recover turns a panic into the unknown-error envelope.
func Recover(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  rec,
					}).Errorf("Recovered from panic: %s", debug.Stack())
					response.Error(w, apperror.Unknown(""))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
