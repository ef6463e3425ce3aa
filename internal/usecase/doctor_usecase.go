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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id string, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	// DeleteDoctor leaves appointments and user links pointing at the id.
	DeleteDoctor(ctx context.Context, id string) error
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponse(doctors), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{}
	converter.ApplyDoctorRequest(doctor, req)

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	converter.ApplyDoctorRequest(doctor, req)
	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	deleted, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
