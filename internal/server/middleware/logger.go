// Журнал HTTP-запросов todo-backend.
package middleware

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/logger"
)

// ResponseWriter перехватывает статус и размер ответа для журнала.
type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

// Write накапливает размер тела; если хендлер не вызывал WriteHeader,
// фиксируем неявный 200.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.Size += n
	return n, err
}

// LoggerMiddleware пишет в журнал каждый запрос к серверу, включая
// отклонённые на этапе проверки токена: запись делается уже после
// next.ServeHTTP, когда статус ответа известен.
func LoggerMiddleware() func(http.Handler) http.Handler {
	log := logger.NewHTTPLogger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(ww, r)

			elapsed := time.Since(start).Seconds() * 1000
			log.LogRequest(r.Method, r.RequestURI, ww.Status, ww.Size, elapsed)
		})
	}
}
