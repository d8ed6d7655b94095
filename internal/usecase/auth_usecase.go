package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidFullName    = errors.New("invalid full name")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProfileNotFound    = errors.New("profile not found")
)

const minPasswordLength = 8

// RegisterInput creates a dashboard user. Staff and owners must be bound to a
// tenant; super admins must not be.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     entities.Role
	TenantID string
}

// LoginResult carries the session token and the authenticated profile.
type LoginResult struct {
	Token   string
	Profile entities.Profile
}

// IAuthUseCase exposes registration and login.

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.Profile, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
}

type AuthUseCase struct {
	profiles interfaces.IProfileRepository
	tokens   interfaces.ITokenService
	log      *logrus.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(profiles interfaces.IProfileRepository, tokens interfaces.ITokenService, log *logrus.Logger) *AuthUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthUseCase{profiles: profiles, tokens: tokens, log: log}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return entities.Profile{}, ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return entities.Profile{}, ErrInvalidPassword
	}
	if strings.TrimSpace(in.FullName) == "" {
		return entities.Profile{}, ErrInvalidFullName
	}
	switch in.Role {
	case entities.RoleStaff, entities.RoleOwner:
		if strings.TrimSpace(in.TenantID) == "" {
			return entities.Profile{}, ErrInvalidTenantID
		}
	case entities.RoleSuperAdmin:
		in.TenantID = ""
	default:
		return entities.Profile{}, ErrInvalidRole
	}

	if existing, err := u.profiles.GetByEmail(ctx, email); err != nil {
		return entities.Profile{}, err
	} else if existing.ID != "" {
		return entities.Profile{}, ErrEmailTaken
	}

	hash, err := u.tokens.HashPassword(in.Password)
	if err != nil {
		return entities.Profile{}, err
	}

	now := time.Now().UTC()
	p := entities.Profile{
		ID:           uuid.NewString(),
		TenantID:     strings.TrimSpace(in.TenantID),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         in.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.profiles.Create(ctx, p)
	if err != nil {
		return entities.Profile{}, err
	}
	u.log.WithFields(logrus.Fields{
		"user_id": created.ID,
		"role":    created.Role,
	}).Info("[auth][usecase] profile registered")
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	// Same error for unknown email and wrong password.
	if p.ID == "" || !u.tokens.CheckPassword(password, p.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(p)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Profile: p}, nil
}

func (u *AuthUseCase) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}
