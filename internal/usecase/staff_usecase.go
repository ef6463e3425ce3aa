package usecase

import (
	"context"
	"errors"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrStaffNotFound = errors.New("staff member not found")

type StaffUsecase interface {
	ListStaff(ctx context.Context) ([]dto.StaffResponse, error)
	GetStaff(ctx context.Context, id string) (*dto.StaffResponse, error)
	CreateStaff(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id string, req *dto.StaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id string) error
}

type staffUsecase struct {
	log       *logrus.Logger
	staffRepo repository.StaffRepository
}

func NewStaffUsecase(log *logrus.Logger, staffRepo repository.StaffRepository) StaffUsecase {
	return &staffUsecase{
		log:       log,
		staffRepo: staffRepo,
	}
}

func (u *staffUsecase) ListStaff(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list staff: %+v", err)
		return nil, err
	}
	return converter.StaffListToResponse(staff), nil
}

func (u *staffUsecase) GetStaff(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff member: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) CreateStaff(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error) {
	staff := &entity.Staff{}
	converter.ApplyStaffRequest(staff, req)

	if err := u.staffRepo.Create(ctx, staff); err != nil {
		u.log.Warnf("Failed to create staff member: %+v", err)
		return nil, err
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) UpdateStaff(ctx context.Context, id string, req *dto.StaffRequest) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff member: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	converter.ApplyStaffRequest(staff, req)
	if err := u.staffRepo.Update(ctx, staff); err != nil {
		u.log.Warnf("Failed to update staff member: %+v", err)
		return nil, err
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) DeleteStaff(ctx context.Context, id string) error {
	deleted, err := u.staffRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete staff member: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrStaffNotFound
	}
	return nil
}
