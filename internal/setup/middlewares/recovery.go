package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/razelos/appsmith/internal/utils"
	"github.com/sirupsen/logrus"
)

func RecoveryMiddleware(next http.Handler, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer utils.RecoveryWithCallback(func(v any) {
			log.WithFields(logrus.Fields{
				"panic":  v,
				"method": r.Method,
				"path":   r.URL.Path,
				"stack":  string(debug.Stack()),
			}).Error("recovered from panic")

			writeError(w, "Sorry, we hit an unexpected problem. Please try again in a few moments.", http.StatusInternalServerError)
		})
		next.ServeHTTP(w, r)
	})
}
