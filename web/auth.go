package web

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/golang-jwt/jwt/v5"
	"github.com/unrolled/render"
)

type ctxKey int

const userIDKey ctxKey = 1

// authenticate attaches the subject of a valid bearer token to the request
// context. Requests without a usable token continue anonymously, the role
// middlewares decide whether that is acceptable.
func authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := parseToken(raw, secret)
			if err != nil {
				log.Printf("rejecting bearer token: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func parseToken(raw string, secret []byte) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func requireAdmin(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return requireRole(ctrl.IsAdmin, render)
}

func requireOwner(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return requireRole(ctrl.IsOwner, render)
}

func requireRole(check func(ctx context.Context, userID string) (bool, error), render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := userIDFromContext(r.Context())
			if userID == "" {
				render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				return
			}

			ok, err := check(r.Context(), userID)
			if err != nil {
				renderError(render, w, err)
				return
			}
			if !ok {
				render.JSON(w, http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
