package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

// SessionCookieName is the cookie that carries the signed session token.
// The cookie is HttpOnly and never readable from script.
const SessionCookieName = "arsip_session"

// AuthnMiddleware authenticates requests via the session cookie. A missing
// cookie yields 401, a cookie that fails signature or expiry checks yields
// 403. On success the identity is injected into the request context.
func AuthnMiddleware(signer *jwtx.SessionSigner) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "missing session")
				return
			}

			claims, err := signer.Verify(cookie.Value)
			if err != nil {
				if !errors.Is(err, jwtx.ErrExpired) {
					log.Warn("session verify failed", "err", err)
				}
				WriteError(w, http.StatusForbidden, "forbidden", "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, claims.Identity())))
		})
	}
}

func contextWithIdentity(ctx context.Context, id jwtx.Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	return context.WithValue(ctx, CtxKeyIdentity, id)
}
