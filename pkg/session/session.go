package session

import (
	"errors"
	"net/http"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Cookie names carrying the session token, one per portal. Role separation is
// done purely through the cookie name: the token itself only binds a user id.
const (
	AdminCookie   = "adminToken"
	PatientCookie = "patientToken"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// Service mints and verifies the signed session tokens and manages the
// role-named cookies that carry them.
type Service struct {
	jwtConfig    config.JWTConfig
	cookieConfig config.CookieConfig
}

func NewService(jwtCfg config.JWTConfig, cookieCfg config.CookieConfig) *Service {
	return &Service{jwtConfig: jwtCfg, cookieConfig: cookieCfg}
}

// Issue mints a signed token binding the given user id.
func (s *Service) Issue(userID uuid.UUID) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

// Verify parses the token and returns the bound user id.
func (s *Service) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.UserID, nil
}

// CookieName maps a role to the cookie its session travels in.
func CookieName(role string) string {
	if role == entity.RoleAdmin {
		return AdminCookie
	}
	return PatientCookie
}

// SetCookie attaches the session token to the response under the role-named
// httpOnly cookie.
func (s *Service) SetCookie(w http.ResponseWriter, role, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(role),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(s.cookieConfig.ExpireDays) * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie invalidates a session by overwriting the role-named cookie with
// an already-expired one.
func (s *Service) ClearCookie(w http.ResponseWriter, role string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(role),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
