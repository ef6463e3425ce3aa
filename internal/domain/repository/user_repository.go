package repository

import (
	"context"

	"hms-backend/internal/domain/entity"
)

type UserRepository interface {
	Repository[entity.User]
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
}
