package middleware

import "net/http"

// BodyLimit caps request bodies at n bytes. Reads past the cap fail with
// *http.MaxBytesError. A non-positive n disables the limit.
func BodyLimit(n int64) Middleware {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.MaxBytesHandler(next, n)
	}
}
