package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/commercekit/ecommerce-api/internal/api/metrics"
	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.CredentialRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.CredentialRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account holding exactly the USER role.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password, domain.RoleUser)
}

// RegisterAdmin creates an account holding exactly the ADMIN role.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password, domain.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	// Check both unique attributes up front so the caller gets an explicit
	// message; the store's unique indexes remain the final arbiter.
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []domain.Role{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	return created, nil
}

// Login verifies the credentials and issues a signed token. Unknown username
// and wrong password collapse into the same error on purpose.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"roles":    user.RoleStrings(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
