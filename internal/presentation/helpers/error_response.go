package helpers

import (
	"errors"
	"net/http"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"github.com/sirupsen/logrus"
)

// CreateErrorResponse maps a usecase error onto the HTTP boundary. Typed
// errors keep their message and code; anything else is logged and answered
// with fallbackMessage.
func CreateErrorResponse(err error, fallbackMessage string, log logrus.FieldLogger) *presentationProtocols.HttpResponse {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}, appErr.Status)
	}

	log.WithError(err).Error(fallbackMessage)

	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: fallbackMessage,
	}, http.StatusInternalServerError)
}
