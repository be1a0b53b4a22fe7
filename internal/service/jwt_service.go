package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService emite y valida tokens de acceso firmados con HS256.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// TTL devuelve la vigencia configurada de los tokens emitidos.
func (s *JWTService) TTL() time.Duration { return s.ttl }

// Issue firma un token con claims {sub, iat, exp} para el sujeto dado.
func (s *JWTService) Issue(subject string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiracion y devuelve el sujeto del token.
// Devuelve ErrJWTExpired cuando el token vencio y ErrJWTInvalid para
// cualquier otro fallo (firma, algoritmo, estructura).
func (s *JWTService) Verify(tokenString string) (string, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return "", ErrJWTInvalid
	}
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrJWTExpired
		}
		return "", ErrJWTInvalid
	}
	return claims.Subject, nil
}
