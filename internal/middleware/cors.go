package middleware

import "net/http"

// CORS - заголовки для браузера: форма живёт на другом origin
// (статический хостинг), без них браузер не пустит запрос.
// Разрешённый origin приходит из конфига, в коде он не зашит.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "POST,OPTIONS")

			// preflight от браузера, до хендлера не доходит
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
