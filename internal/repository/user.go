package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (*dao.User, error)
	InsertSession(ctx context.Context, session dao.Session) (dao.Session, error)
	FindSessionByToken(ctx context.Context, token string) (*dao.Session, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		if errors.Is(err, dao.ErrUserEmailExists) {
			return domain.User{}, domain.ErrUserEmailExists
		}

		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	user := r.daoToDomain(*found)
	return &user, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, userID uint, token string) (domain.Session, error) {
	created, err := r.dao.InsertSession(ctx, dao.Session{
		UserID: userID,
		Token:  token,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.InsertSession -> %w", err)
	}

	return r.sessionDaoToDomain(created), nil
}

func (r *UserRepository) FindSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	found, err := r.dao.FindSessionByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSessionByToken -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	session := r.sessionDaoToDomain(*found)
	return &session, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) sessionDaoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Token:     s.Token,
		CreatedAt: s.CreatedAt,
	}
}
