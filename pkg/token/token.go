package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el identificador del usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Config secrets y vidas útiles para la emisión de tokens. Los dos secrets son
// independientes: el access token viaja al cliente en cada request (vida corta),
// el refresh token solo se usa para emitir nuevos access tokens (vida larga).
// Se inyecta explícitamente en el Service; nunca estado global.
type Config struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpMinutes int // default 60 (1 hora)
	RefreshExpHours  int // default 168 (7 días)
	Issuer           string
}

// Service emite y verifica tokens firmados HS256.
type Service struct {
	cfg Config
}

// NewService construye el servicio de tokens. Aplica defaults de expiración si vienen en cero.
func NewService(cfg Config) *Service {
	if cfg.AccessExpMinutes == 0 {
		cfg.AccessExpMinutes = 60
	}
	if cfg.RefreshExpHours == 0 {
		cfg.RefreshExpHours = 168
	}
	return &Service{cfg: cfg}
}

// IssueAccess genera un access token firmado con el access secret (expira en AccessExpMinutes).
func (s *Service) IssueAccess(userID string) (string, error) {
	return s.issue(userID, s.cfg.AccessSecret, time.Duration(s.cfg.AccessExpMinutes)*time.Minute)
}

// IssueRefresh genera un refresh token firmado con el refresh secret (expira en RefreshExpHours).
func (s *Service) IssueRefresh(userID string) (string, error) {
	return s.issue(userID, s.cfg.RefreshSecret, time.Duration(s.cfg.RefreshExpHours)*time.Hour)
}

func (s *Service) issue(userID, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// VerifyAccess valida un access token y devuelve el userID.
func (s *Service) VerifyAccess(tokenString string) (string, error) {
	return verify(s.cfg.AccessSecret, tokenString)
}

// VerifyRefresh valida un refresh token y devuelve el userID.
func (s *Service) VerifyRefresh(tokenString string) (string, error) {
	return verify(s.cfg.RefreshSecret, tokenString)
}

// verify retorna error si el token es inválido, expirado o con firma incorrecta.
func verify(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, nil
}
