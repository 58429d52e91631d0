package middleware

import (
	"net/http"

	"go.uber.org/zap"

	myErr "feedbackhub/internal/types/errors"
)

// Recovery - паника в одном запросе не должна ронять весь процесс:
// запросы независимы, клиент получает обычный 500 вместо оборванного соединения
func Recovery(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Errorw(
						"Panic while handling request",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", p,
					)
					myErr.SendErrorTo(w, myErr.ErrInternal, http.StatusInternalServerError, logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
