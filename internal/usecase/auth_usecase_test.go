package usecase

import (
	"context"
	"testing"
	"time"

	"go-dental-clinic/config"
	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/domain/entity"
	"go-dental-clinic/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(userRepo *MockUserRepository) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthUsecase(testLogger(), userRepo, jwtService, nil, &MockAuditService{})
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthFixture(&MockUserRepository{})

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{
			Email:    email,
			Password: hashedPassword(t, "correct-password"),
			IsActive: true,
		}, nil
	}
	uc := newAuthFixture(userRepo)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := &MockUserRepository{}
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{
			Email:    email,
			Password: hashedPassword(t, "password123"),
			IsActive: false,
		}, nil
	}
	uc := newAuthFixture(userRepo)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUserInactive)
	assert.Nil(t, result)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{Email: email}, nil
	}
	uc := newAuthFixture(userRepo)

	result, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "staff@example.com",
		Password: "password123",
		FullName: "New Staff",
		Role:     entity.RoleReceptionist,
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.Nil(t, result)
}

func TestRegister_HashesPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	var created *entity.User
	userRepo.CreateFunc = func(ctx context.Context, user *entity.User) error {
		created = user
		return nil
	}
	uc := newAuthFixture(userRepo)

	result, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "staff@example.com",
		Password: "password123",
		FullName: "New Staff",
		Role:     entity.RoleAdmin,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	assert.True(t, created.IsAdmin())
}

func TestRefreshToken_Garbage(t *testing.T) {
	uc := newAuthFixture(&MockUserRepository{})

	result, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})

	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	assert.Nil(t, result)
}

func TestMe_Unauthenticated(t *testing.T) {
	uc := newAuthFixture(&MockUserRepository{})

	result, err := uc.Me(context.Background())

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, result)
}
