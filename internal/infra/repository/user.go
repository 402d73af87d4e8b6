package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAdminByEmail only matches admin accounts. Customer rows never grant
// back-office access even with a valid password.
func (r *UserRepository) GetAdminByEmail(ctx context.Context, email string) (domain.User, error) {
	var m models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, string(domain.UserRoleAdmin)).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "user"}
		}
		return domain.User{}, err
	}

	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
		Role:         domain.UserRole(m.Role),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		CreatedAt:    m.CDate,
	}, nil
}
