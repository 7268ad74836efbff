package middlewares

import (
	"encoding/json"
	"net/http"

	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
)

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(&presentationProtocols.ErrorResponse{Error: message})
}
