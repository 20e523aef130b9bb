package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Enrollment struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex"`
	User      User      `gorm:"foreignKey:UserID"`
	Name      string    `gorm:"not null"`
	CPF       string    `gorm:"column:cpf;not null"`
	Birthday  time.Time `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EnrollmentDAO struct {
	db *gorm.DB
}

func NewEnrollmentDAO(db *gorm.DB) *EnrollmentDAO {
	return &EnrollmentDAO{
		db: db,
	}
}

func (d *EnrollmentDAO) FindByUserID(ctx context.Context, userID uint) (*Enrollment, error) {
	var enrollment Enrollment

	result := conn(ctx, d.db).Where("user_id = ?", userID).First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &enrollment, nil
}

// Upsert creates the user's enrollment or overwrites its editable fields.
func (d *EnrollmentDAO) Upsert(ctx context.Context, enrollment Enrollment) (Enrollment, error) {
	result := conn(ctx, d.db).
		Omit("User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "cpf", "birthday", "phone", "updated_at"}),
		}).
		Create(&enrollment)
	if result.Error != nil {
		return Enrollment{}, result.Error
	}

	found, err := d.FindByUserID(ctx, enrollment.UserID)
	if err != nil {
		return Enrollment{}, err
	}
	if found == nil {
		return Enrollment{}, gorm.ErrRecordNotFound
	}

	return *found, nil
}
