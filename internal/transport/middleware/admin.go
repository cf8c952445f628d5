package middleware

import (
	"context"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminFromCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
