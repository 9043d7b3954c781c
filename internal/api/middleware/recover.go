package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// Recover перехватывает панику обработчика и отвечает 500.
// Если заголовки уже отправлены, ответ не меняется.
func Recover(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					log.Error("%s %s - panic recovered: %v\n%s", r.Method, r.URL.Path, p, debug.Stack())
					if rec.wroteHeader {
						return
					}
					w.Header().Set("Connection", "close")
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
