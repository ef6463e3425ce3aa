package repository

import (
	"context"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	gormRepository[entity.User, *entity.User]
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{gormRepository[entity.User, *entity.User]{db: db}}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.find(ctx, "email = ?", email)
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	return r.find(ctx, "role = ?", role)
}
