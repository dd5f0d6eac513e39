package middlewares

import (
	"net/http"

	"github.com/maturamate/maturamate-api/internal/requestcache"
)

// RequestCache installa una cache di memoizzazione valida per la singola
// richiesta; viene scartata insieme al contesto a fine richiesta.
func RequestCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcache.Inject(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
