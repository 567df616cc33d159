package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AdminService/internal/api/handlers"
)

const (
	msgForbidden = "доступ только для администраторов"
)

// AdminChecker проверяет роль администратора
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireAdmin пропускает только администраторов. Должен стоять после Auth.
// При недоступности проверяющего сервиса запрос отклоняется.
func RequireAdmin(checker AdminChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("RequireAdmin: role check failed for user_id=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}
			if !isAdmin {
				logger.Warn("RequireAdmin: access denied for user_id=%s %s %s", userID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
