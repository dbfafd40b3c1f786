package stub

import (
	"log/slog"
	"net/http"

	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/tracing"
)

// ServerResponse is the envelope every stub handler returns. Data is
// marshalled inline so clients see the same shapes the production API
// serves.
type ServerResponse struct {
	Message    string      `json:"message,omitempty"`
	Status     string      `json:"status,omitempty"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	raw        interface{}
}

// dataResponse returns payload as the whole response body, the way the
// production API serves entities without an envelope.
func dataResponse(payload interface{}, status string) *ServerResponse {
	return &ServerResponse{
		Status:     status,
		StatusCode: util.StatusCode(status),
		raw:        payload,
	}
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		slog.Error(message, "error", err, "request_id", tc.RequestID)
	}
	return &ServerResponse{
		Detail:     message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	slog.Error(message, "error", err)
	writeJSONResponse(w, []byte(`{"detail":"`+message+`"}`), util.StatusCode(status))
}
