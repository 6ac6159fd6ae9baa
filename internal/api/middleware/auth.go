package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
)

// Роли персонала
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgForbidden    = "доступ запрещен"
)

var errMalformedHeader = errors.New("authorization header must be 'Bearer <token>'")

// StaffClaims claims токена персонала
type StaffClaims struct {
	UserID  string `json:"userID"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	HotelID int64  `json:"hotelId,omitempty"`
	jwt.RegisteredClaims
}

type staffKey struct{}

// GetStaff возвращает claims, положенные в контекст middleware Auth
func GetStaff(ctx context.Context) (*StaffClaims, bool) {
	claims, ok := ctx.Value(staffKey{}).(*StaffClaims)
	return claims, ok
}

// Auth проверяет Bearer JWT (HS256) и роль. Без ролей допускается любая валидная роль
func Auth(secret []byte, log Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				log.Warn("%s %s - Missing authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parseToken(secret, header)
			if err != nil {
				log.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if !hasRole(claims.Role, roles) {
				log.Warn("%s %s - Forbidden: user=%s role=%q", r.Method, r.URL.Path, claims.UserID, claims.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), staffKey{}, claims)))
		})
	}
}

func parseToken(secret []byte, header string) (*StaffClaims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return nil, errMalformedHeader
	}

	claims := &StaffClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func hasRole(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return role != ""
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
