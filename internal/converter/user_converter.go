package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password hash
// never leaves this package.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		DoctorID:  user.DoctorID,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
