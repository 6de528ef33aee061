package middleware

import "net/http"

// MaxBodyBytes ограничивает размер тела запроса через http.MaxBytesReader.
//
// Лимит limit <= 0 отключает ограничение. Превышение лимита всплывает в
// хендлере как ошибка чтения тела ("http: request body too large"), а сам
// MaxBytesReader закрывает соединение после ответа.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
