package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*domain.Enrollment, error)
	Upsert(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error)
}

type EnrollmentService struct {
	repo EnrollmentRepository
}

func NewEnrollmentService(repo EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{
		repo: repo,
	}
}

func (s *EnrollmentService) GetForUser(ctx context.Context, userID uint) (domain.Enrollment, error) {
	enrollment, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	if enrollment == nil {
		return domain.Enrollment{}, domain.ErrEnrollmentNotFound
	}

	return *enrollment, nil
}

func (s *EnrollmentService) Upsert(ctx context.Context, userID uint, enrollment domain.Enrollment) (domain.Enrollment, error) {
	enrollment.UserID = userID

	saved, err := s.repo.Upsert(ctx, enrollment)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return saved, nil
}
