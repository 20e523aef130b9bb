package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

func TestEnrollmentService(t *testing.T) {
	t.Parallel()

	t.Run("missing enrollment is not found", func(t *testing.T) {
		svc := NewEnrollmentService(newFakeEnrollmentRepo())

		_, err := svc.GetForUser(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
	})

	t.Run("upsert creates then updates", func(t *testing.T) {
		svc := NewEnrollmentService(newFakeEnrollmentRepo())
		birthday := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

		created, err := svc.Upsert(context.Background(), userID, domain.Enrollment{Name: "Ana", CPF: "12345678909", Birthday: birthday})
		require.NoError(t, err)
		assert.Equal(t, userID, created.UserID)

		updated, err := svc.Upsert(context.Background(), userID, domain.Enrollment{Name: "Ana Maria", CPF: "12345678909", Birthday: birthday})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		got, err := svc.GetForUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", got.Name)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		repo := newFakeEnrollmentRepo()
		repo.err = boom
		svc := NewEnrollmentService(repo)

		_, err := svc.GetForUser(context.Background(), userID)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}
