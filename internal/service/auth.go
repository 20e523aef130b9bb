package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	ErrSessionNotFound    = fmt.Errorf("session %w", domain.ErrUnauthorized)
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateSession(ctx context.Context, userID uint, token string) (domain.Session, error)
	FindSessionByToken(ctx context.Context, token string) (*domain.Session, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (domain.User, error) {
	if err := s.checkEmailExists(ctx, email); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		Email:    email,
		Password: hashedPassword,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}
	if user == nil {
		return domain.User{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("bcrypt.CompareHashAndPassword -> %w", err)
	}

	return *user, nil
}

// StartSession stores token as the user's active session.
func (s *AuthService) StartSession(ctx context.Context, userID uint, token string) error {
	if _, err := s.repo.CreateSession(ctx, userID, token); err != nil {
		return fmt.Errorf("s.repo.CreateSession -> %w", err)
	}

	return nil
}

func (s *AuthService) FindSession(ctx context.Context, token string) (domain.Session, error) {
	session, err := s.repo.FindSessionByToken(ctx, token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.FindSessionByToken -> %w", err)
	}
	if session == nil {
		return domain.Session{}, ErrSessionNotFound
	}

	return *session, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}
	if user != nil {
		return domain.ErrUserEmailExists
	}

	return nil
}
