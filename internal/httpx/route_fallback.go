package httpx

import "net/http"

const (
	RouteNotFoundMessage    = "Halaman tidak ditemukan"
	MethodNotAllowedMessage = "Metode tidak diizinkan"
)

// statusWriter keeps the headers and status of ServeMux's built-in 404/405
// handlers and drops their plain text body.
type statusWriter struct {
	header http.Header
	status int
}

func (w *statusWriter) Header() http.Header { return w.header }

func (w *statusWriter) Write(p []byte) (int, error) { return len(p), nil }

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

// WithRouteFallback serves mux, answering requests no pattern matches with a
// fail envelope instead of the mux's plain text. A 405 keeps its Allow header.
func WithRouteFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		sw := &statusWriter{header: w.Header()}
		h.ServeHTTP(sw, r)

		switch sw.status {
		case http.StatusMethodNotAllowed:
			Fail(w, http.StatusMethodNotAllowed, MethodNotAllowedMessage)
		default:
			Fail(w, http.StatusNotFound, RouteNotFoundMessage)
		}
	})
}
