package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/giftnest/giftnest-backend/api/responses"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey gates the fulfillment surface behind a static shared key. The
// real operator auth lives upstream; this is the backstop when the API is
// reachable directly.
func AdminKey(expected string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if expected == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin access disabled"))
				return
			}

			provided := strings.TrimSpace(r.Header.Get(adminKeyHeader))
			if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "path", r.URL.Path), "admin.key_rejected")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid admin key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
