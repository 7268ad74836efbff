package middlewares

import (
	"errors"
	"net/http"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/presentation/helpers"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoadSession resolves the authenticated user and its permission groups and
// puts them on the request context. It runs after VerifyAccessToken.
func LoadSession(next http.Handler, loadSessionUser usecase.LoadSessionUser, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
		if err != nil {
			writeError(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		session, err := loadSessionUser.Load(r.Context(), userId)
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			writeError(w, "User not found", http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.WithError(err).WithField("userId", userId.Hex()).Error("failed to load session")
			writeError(w, "an error occurred when loading the session", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(helpers.WithSessionUser(r.Context(), session)))
	})
}
