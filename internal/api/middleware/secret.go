package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const (
	// HeaderAdminSecret заголовок с секретом администратора
	HeaderAdminSecret = "X-Admin-Secret"

	// HeaderCronSecret заголовок с секретом планировщика
	HeaderCronSecret = "X-Cron-Secret"
)

// AdminAuth проверяет заголовок X-Admin-Secret для административных маршрутов
func AdminAuth(secret string) mux.MiddlewareFunc {
	return requireSecret(HeaderAdminSecret, secret)
}

// CronAuth проверяет заголовок X-Cron-Secret для маршрутов планировщика
func CronAuth(secret string) mux.MiddlewareFunc {
	return requireSecret(HeaderCronSecret, secret)
}

func requireSecret(header, secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(header)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "доступ запрещен"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
