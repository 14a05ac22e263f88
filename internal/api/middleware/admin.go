package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
)

// AdminSecretHeader заголовок с административным секретом
const AdminSecretHeader = "X-Admin-Secret"

type adminGrantKey struct{}

// AdminAuth проверяет административный секрет на каждом запросе
// Совпавший секрет дает право только внутри текущего запроса:
// признак живет в контексте и исчезает вместе с ним
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AdminSecretHeader)
			if presented != "" &&
				subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1 {
				r = r.WithContext(context.WithValue(r.Context(), adminGrantKey{}, true))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin сообщает, предъявил ли текущий запрос верный административный секрет
func IsAdmin(ctx context.Context) bool {
	granted, ok := ctx.Value(adminGrantKey{}).(bool)
	return ok && granted
}

// RequireAdmin пропускает только запросы с проверенным административным правом
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"требуется административный секрет"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
