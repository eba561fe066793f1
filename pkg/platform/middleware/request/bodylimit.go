package request

import (
	"net/http"
)

// BodyLimit wraps console form bodies in a MaxBytesReader. Reads past
// maxBytes fail with *http.MaxBytesError, which the JSON decoder surfaces
// as "request body too large". Bodyless methods pass through untouched.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
