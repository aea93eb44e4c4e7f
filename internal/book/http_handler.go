package book

import (
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
)

const (
	msgCreated           = "Buku berhasil ditambahkan"
	msgCreateMissingName = "Gagal menambahkan buku. Mohon isi nama buku"
	msgCreateReadPage    = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	msgNotFound          = "Buku tidak ditemukan"
	msgUpdated           = "Buku berhasil diperbarui"
	msgUpdateMissingName = "Gagal memperbarui buku. Mohon isi nama buku"
	msgUpdateReadPage    = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	msgUpdateNotFound    = "Gagal memperbarui buku. Id tidak ditemukan"
	msgDeleted           = "Buku berhasil dihapus"
	msgDeleteNotFound    = "Buku gagal dihapus. Id tidak ditemukan"
	msgInvalidBody       = "Gagal memproses permintaan. Body harus berupa objek JSON yang valid"
	msgBodyTooLarge      = "Ukuran permintaan terlalu besar"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.Get)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !decodeInput(w, r, &in) {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	switch {
	case err == nil:
		httpx.Success(w, http.StatusCreated, msgCreated, map[string]string{"bookId": id})
	case errors.Is(err, ErrMissingName):
		httpx.Fail(w, http.StatusBadRequest, msgCreateMissingName)
	case errors.Is(err, ErrReadPageExceedsPageCount):
		httpx.Fail(w, http.StatusBadRequest, msgCreateReadPage)
	default:
		httpx.Error(w, r, err)
	}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Success(w, http.StatusOK, "", map[string]any{"books": books})
}

// Get handles GET /books/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("bookId"))
	switch {
	case err == nil:
		httpx.Success(w, http.StatusOK, "", map[string]any{"book": b})
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, msgNotFound)
	default:
		httpx.Error(w, r, err)
	}
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !decodeInput(w, r, &in) {
		return
	}

	err := h.service.Update(r.Context(), r.PathValue("bookId"), in)
	switch {
	case err == nil:
		httpx.Success(w, http.StatusOK, msgUpdated, nil)
	case errors.Is(err, ErrMissingName):
		httpx.Fail(w, http.StatusBadRequest, msgUpdateMissingName)
	case errors.Is(err, ErrReadPageExceedsPageCount):
		httpx.Fail(w, http.StatusBadRequest, msgUpdateReadPage)
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, msgUpdateNotFound)
	default:
		httpx.Error(w, r, err)
	}
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("bookId"))
	switch {
	case err == nil:
		httpx.Success(w, http.StatusOK, msgDeleted, nil)
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, msgDeleteNotFound)
	default:
		httpx.Error(w, r, err)
	}
}

func decodeInput(w http.ResponseWriter, r *http.Request, in *Input) bool {
	err := httpx.DecodeJSON(r, in)
	switch {
	case err == nil:
		return true
	case errors.Is(err, httpx.ErrBodyTooLarge):
		httpx.Fail(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	default:
		httpx.Fail(w, http.StatusBadRequest, msgInvalidBody)
	}
	return false
}
