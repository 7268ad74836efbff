package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
)

func CreateResponse(body interface{}, statusCode int) *presentationProtocols.HttpResponse {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		buf.Reset()
		json.NewEncoder(buf).Encode(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when encoding the response",
		})
		statusCode = http.StatusInternalServerError
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(buf),
		StatusCode: statusCode,
		Header:     header,
	}
}

func CreateFileResponse(content []byte, contentType string, filename string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(content)),
		StatusCode: http.StatusOK,
		Header:     header,
	}
}
