package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
)

// IssueToken signs a token for subject that the send route accepts until
// ttl runs out.
func (a AuthSettings) IssueToken(subject string, ttl time.Duration) (string, error) {
	return utils.GenerateJWTToken(a.Issuer, subject, ttl, a.SignKey)
}

// withAuth requires a bearer JWT signed with the configured key and issuer.
// The token subject is stored under [utils.SubjectCtxKey].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, ErrInvalidAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.SignKey, h.auth.Issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, ErrInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
