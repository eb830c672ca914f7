package server

import "net/http"

// Cross-origin isolation headers. Browsers only enable SharedArrayBuffer
// and high-resolution timers for WASM when both are present on every
// response, error pages included.
const (
	headerEmbedderPolicy = "Cross-Origin-Embedder-Policy"
	headerOpenerPolicy   = "Cross-Origin-Opener-Policy"

	embedderPolicyValue = "require-corp"
	openerPolicyValue   = "same-origin"
)

// isolationHandler sets the two isolation headers before delegating, so
// they are in place no matter what status the wrapped handler writes.
func isolationHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerEmbedderPolicy, embedderPolicyValue)
		w.Header().Set(headerOpenerPolicy, openerPolicyValue)
		next.ServeHTTP(w, r)
	})
}
