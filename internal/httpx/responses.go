package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ServerErrorMessage is the client-facing message for unexpected failures.
const ServerErrorMessage = "Terjadi kegagalan pada server"

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(env)
}

// Success writes a "success" envelope. message and data are omitted when empty.
func Success(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail writes a "fail" envelope for a request the client got wrong.
func Fail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}

// Error logs err on the request logger and writes a 500 "error" envelope.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, Envelope{
		Status:  StatusError,
		Message: ServerErrorMessage,
	})
}
