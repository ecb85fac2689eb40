package httpx

import (
	"context"

	"github.com/arsipkita/arsip/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyIdentity ctxKey = "identity"
)

// IdentityFromContext returns the authenticated identity injected by
// AuthnMiddleware, if any.
func IdentityFromContext(ctx context.Context) (jwtx.Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(jwtx.Identity)
	return id, ok
}
