package usecase

import (
	"context"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/sirupsen/logrus"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	// LinkDoctor sets or clears the Doctor record a doctor account acts as.
	LinkDoctor(ctx context.Context, userID string, req *dto.LinkDoctorRequest) (*dto.UserResponse, error)
	BackfillDoctorLinks(ctx context.Context) (*service.BackfillResult, error)
}

type userUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	identity   service.DoctorIdentityService
	audit      service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	identity service.DoctorIdentityService,
	audit service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		identity:   identity,
		audit:      audit,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) LinkDoctor(ctx context.Context, userID string, req *dto.LinkDoctorRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldDoctorID := user.DoctorID
	if req.DoctorID != nil {
		if user.Role != entity.RoleDoctor {
			return nil, ErrDoctorLinkRole
		}
		doctor, err := u.doctorRepo.FindByID(ctx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrUnknownDoctor
		}
		user.DoctorID = &doctor.ID
	} else {
		user.DoctorID = nil
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.audit.Record(ctx, service.AuditEntry{
		ActorID:  actorID,
		Action:   service.AuditActionDoctorLink,
		Entity:   "user",
		EntityID: user.ID,
		OldValue: oldDoctorID,
		NewValue: user.DoctorID,
	})

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) BackfillDoctorLinks(ctx context.Context) (*service.BackfillResult, error) {
	result, err := u.identity.Backfill(ctx)
	if err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{
		"scanned":   result.Scanned,
		"linked":    result.Linked,
		"unmatched": result.Unmatched,
	}).Info("Doctor link backfill finished")
	return result, nil
}
