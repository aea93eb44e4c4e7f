package main

import (
	"net/http"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
)

// routes builds the full handler. Middleware order, outermost first:
//
//	logger, request id, access log, recovery, security headers,
//	CORS, rate limit, body size limit, mux with envelope 404/405
func routes(cfg config, logger zerolog.Logger, books *book.HTTPHandler, limiter *httpx.RateLimitMiddleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	books.Register(mux)

	return httpx.Chain(httpx.WithRouteFallback(mux),
		httpx.LoggerMiddleware(logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
