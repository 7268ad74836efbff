package middlewares

import (
	"net/http"
	"strings"

	"github.com/razelos/appsmith/internal/utils"
)

var sessionCookies = []string{"__Secure-next-auth.session-token", "next-auth.session-token"}

func VerifyAccessToken(next http.Handler, tokens *utils.AccessTokenUtil) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		for _, name := range sessionCookies {
			if cookie, err := r.Cookie(name); err == nil {
				authorization = cookie.Value
				break
			}
		}
		if authorization == "" {
			authorization = r.Header.Get("Authorization")
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")
		if authorization == "" {
			writeError(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.DecodeToken(authorization)
		if err != nil {
			writeError(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			writeError(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", sub)

		next.ServeHTTP(w, r)
	})
}
