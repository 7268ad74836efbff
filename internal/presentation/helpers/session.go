package helpers

import (
	"context"
	"net/http"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sessionUserKey struct{}

func WithSessionUser(ctx context.Context, session *models.SessionUser) context.Context {
	return context.WithValue(ctx, sessionUserKey{}, session)
}

func SessionUserFromContext(ctx context.Context) (*models.SessionUser, bool) {
	session, ok := ctx.Value(sessionUserKey{}).(*models.SessionUser)
	return session, ok && session != nil
}

// RequestScope extracts the session and the workspace path value every
// workspace member route needs. A non-nil response means the request stops.
func RequestScope(r presentationProtocols.HttpRequest) (*models.SessionUser, primitive.ObjectID, *presentationProtocols.HttpResponse) {
	session, ok := SessionUserFromContext(r.Req.Context())
	if !ok {
		return nil, primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing session",
		}, http.StatusUnauthorized)
	}

	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return nil, primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid workspace ID format",
			Code:  apperrors.ErrInvalidParameter.Code,
		}, http.StatusBadRequest)
	}

	return session, workspaceId, nil
}
