package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service signs and verifies HS256 session tokens and hashes credentials.
//
// Supported env vars:
//   - JWT_SECRET (required in production; falls back to a dev default)
//   - JWT_EXPIRY (Go duration, default 24h)
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
}

var _ interfaces.ITokenService = (*Service)(nil)

func NewService() *Service {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-in-production"
	}

	exp := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			exp = parsed
		}
	}

	return &Service{jwtSecret: []byte(secret), tokenExp: exp}
}

func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *Service) GenerateToken(p entities.Profile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   p.ID,
		"tenant_id": p.TenantID,
		"email":     p.Email,
		"role":      string(p.Role),
		"exp":       now.Add(s.tokenExp).Unix(),
		"iat":       now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *Service) ValidateToken(tokenString string) (entities.Claims, error) {
	tokenString = strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Claims{}, ErrExpiredToken
		}
		return entities.Claims{}, ErrInvalidToken
	}
	if !token.Valid {
		return entities.Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Claims{}, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return entities.Claims{}, ErrInvalidToken
	}
	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return entities.Claims{}, ErrInvalidToken
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return entities.Claims{}, ErrInvalidToken
	}

	tenantID, _ := mapClaims["tenant_id"].(string)
	email, _ := mapClaims["email"].(string)

	return entities.Claims{
		UserID:   userID,
		TenantID: tenantID,
		Email:    email,
		Role:     entities.Role(roleStr),
		Exp:      int64(exp),
	}, nil
}
