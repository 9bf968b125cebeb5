package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const callerContextKey contextKey = "caller"

const jwtClaimSubject = "sub"

// Authenticate verifies the bearer token and stores the caller identity in the
// request context. Identity issuance lives outside this service; only the
// HS256 signature and the subject claim are checked here.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), callerContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCallerIDFromContext returns the authenticated caller's opaque identifier.
func GetCallerIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(callerContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("caller claims not found in context")
	}

	subject, ok := claims[jwtClaimSubject]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimSubject)
	}
	subjectStr, ok := subject.(string)
	if !ok || subjectStr == "" {
		return "", fmt.Errorf("invalid %q claim in token", jwtClaimSubject)
	}
	return subjectStr, nil
}
