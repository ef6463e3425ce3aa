package usecase

import (
	"context"

	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/service"
)

// doctorScope describes which rows a caller may list. Doctors only see rows
// tied to the Doctor record their account is linked to; an unlinked doctor
// sees nothing.
type doctorScope struct {
	restricted bool
	doctorID   string
}

func (s doctorScope) empty() bool {
	return s.restricted && s.doctorID == ""
}

// owns reports whether a row tied to doctorID is visible to the caller.
func (s doctorScope) owns(doctorID string) bool {
	return !s.restricted || (s.doctorID != "" && s.doctorID == doctorID)
}

func scopeFor(ctx context.Context, identity service.DoctorIdentityService) (doctorScope, error) {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return doctorScope{}, ErrMissingIdentity
	}
	if role != entity.RoleDoctor {
		return doctorScope{}, nil
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	doctorID, linked, err := identity.ResolveDoctorID(ctx, userID)
	if err != nil {
		return doctorScope{}, err
	}
	if !linked {
		return doctorScope{restricted: true}, nil
	}
	return doctorScope{restricted: true, doctorID: doctorID}, nil
}
