package interfaces

import "bengkel_manager/internal/domain/entities"

// ITokenService abstracts credential hashing and session token handling.

type ITokenService interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
	GenerateToken(p entities.Profile) (string, error)
	ValidateToken(token string) (entities.Claims, error)
}
