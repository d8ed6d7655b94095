package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a staff profile bound to a tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		profiles.EXPECT().GetByEmail(gomock.Any(), "siti@bengkelmaju.id").Return(entities.Profile{}, nil)
		tokens.EXPECT().HashPassword("correct-horse").Return("$2a$10$hash", nil)
		profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.PasswordHash != "$2a$10$hash" {
					t.Fatalf("expected stored hash, got %q", p.PasswordHash)
				}
				if p.TenantID != "tenant-1" {
					t.Fatalf("expected tenant binding, got %q", p.TenantID)
				}
				return p, nil
			})

		got, err := uc.Register(ctx, RegisterInput{
			FullName: "Siti",
			Email:    "  Siti@BengkelMaju.id ",
			Password: "correct-horse",
			Role:     entities.RoleStaff,
			TenantID: "tenant-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != "siti@bengkelmaju.id" {
			t.Fatalf("email must be normalized, got %q", got.Email)
		}
	})

	t.Run("super admin loses any tenant binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		profiles.EXPECT().GetByEmail(gomock.Any(), "root@platform.id").Return(entities.Profile{}, nil)
		tokens.EXPECT().HashPassword(gomock.Any()).Return("$2a$10$hash", nil)
		profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.TenantID != "" {
					t.Fatalf("super admin must not carry a tenant, got %q", p.TenantID)
				}
				return p, nil
			})

		_, err := uc.Register(ctx, RegisterInput{
			FullName: "Root",
			Email:    "root@platform.id",
			Password: "longenough",
			Role:     entities.RoleSuperAdmin,
			TenantID: "tenant-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("staff without tenant is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		_, err := uc.Register(ctx, RegisterInput{
			FullName: "Siti",
			Email:    "siti@bengkelmaju.id",
			Password: "longenough",
			Role:     entities.RoleStaff,
		})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		profiles.EXPECT().GetByEmail(gomock.Any(), "siti@bengkelmaju.id").Return(entities.Profile{ID: "existing"}, nil)

		_, err := uc.Register(ctx, RegisterInput{
			FullName: "Siti",
			Email:    "siti@bengkelmaju.id",
			Password: "longenough",
			Role:     entities.RoleOwner,
			TenantID: "tenant-1",
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		_, err := uc.Register(ctx, RegisterInput{
			FullName: "Siti",
			Email:    "siti@bengkelmaju.id",
			Password: "short",
			Role:     entities.RoleStaff,
			TenantID: "tenant-1",
		})
		if !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		_, err := uc.Register(ctx, RegisterInput{
			FullName: "Siti",
			Email:    "siti@bengkelmaju.id",
			Password: "longenough",
			Role:     "mechanic",
		})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns token and profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		stored := entities.Profile{ID: "user-1", Email: "siti@bengkelmaju.id", PasswordHash: "$2a$10$hash", Role: entities.RoleStaff, TenantID: "tenant-1"}
		profiles.EXPECT().GetByEmail(gomock.Any(), "siti@bengkelmaju.id").Return(stored, nil)
		tokens.EXPECT().CheckPassword("correct-horse", "$2a$10$hash").Return(true)
		tokens.EXPECT().GenerateToken(stored).Return("jwt-token", nil)

		res, err := uc.Login(ctx, "Siti@BengkelMaju.id", "correct-horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "jwt-token" {
			t.Fatalf("expected token, got %q", res.Token)
		}
	})

	t.Run("unknown email and wrong password share the same error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mocks.NewMockIProfileRepository(ctrl)
		tokens := mocks.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(profiles, tokens, nil)

		profiles.EXPECT().GetByEmail(gomock.Any(), "ghost@bengkelmaju.id").Return(entities.Profile{}, nil)
		if _, err := uc.Login(ctx, "ghost@bengkelmaju.id", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}

		stored := entities.Profile{ID: "user-1", PasswordHash: "$2a$10$hash"}
		profiles.EXPECT().GetByEmail(gomock.Any(), "siti@bengkelmaju.id").Return(stored, nil)
		tokens.EXPECT().CheckPassword("wrong", "$2a$10$hash").Return(false)
		if _, err := uc.Login(ctx, "siti@bengkelmaju.id", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthUseCase_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	profiles := mocks.NewMockIProfileRepository(ctrl)
	tokens := mocks.NewMockITokenService(ctrl)
	uc := NewAuthUseCase(profiles, tokens, nil)

	profiles.EXPECT().GetByID(gomock.Any(), "user-404").Return(entities.Profile{}, nil)
	if _, err := uc.GetProfile(context.Background(), "user-404"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
