package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type EnrollmentDAO interface {
	FindByUserID(ctx context.Context, userID uint) (*dao.Enrollment, error)
	Upsert(ctx context.Context, enrollment dao.Enrollment) (dao.Enrollment, error)
}

type EnrollmentRepository struct {
	dao EnrollmentDAO
}

func NewEnrollmentRepository(dao EnrollmentDAO) *EnrollmentRepository {
	return &EnrollmentRepository{
		dao: dao,
	}
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Enrollment, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	enrollment := r.daoToDomain(*found)
	return &enrollment, nil
}

func (r *EnrollmentRepository) Upsert(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	saved, err := r.dao.Upsert(ctx, dao.Enrollment{
		UserID:   enrollment.UserID,
		Name:     enrollment.Name,
		CPF:      enrollment.CPF,
		Birthday: enrollment.Birthday,
		Phone:    enrollment.Phone,
	})
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *EnrollmentRepository) daoToDomain(e dao.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		CPF:       e.CPF,
		Birthday:  e.Birthday,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
