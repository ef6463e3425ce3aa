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

var ErrMedicineNotFound = errors.New("medicine not found")

type MedicineUsecase interface {
	ListMedicines(ctx context.Context) ([]dto.MedicineResponse, error)
	GetMedicine(ctx context.Context, id string) (*dto.MedicineResponse, error)
	CreateMedicine(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	UpdateMedicine(ctx context.Context, id string, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	DeleteMedicine(ctx context.Context, id string) error
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(log *logrus.Logger, medicineRepo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
	}
}

func (u *medicineUsecase) ListMedicines(ctx context.Context) ([]dto.MedicineResponse, error) {
	meds, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}
	return converter.MedicinesToResponse(meds), nil
}

func (u *medicineUsecase) GetMedicine(ctx context.Context, id string) (*dto.MedicineResponse, error) {
	med, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if med == nil {
		return nil, ErrMedicineNotFound
	}
	return converter.MedicineToResponse(med), nil
}

func (u *medicineUsecase) CreateMedicine(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	med := &entity.Medicine{}
	converter.ApplyMedicineRequest(med, req)

	if err := u.medicineRepo.Create(ctx, med); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}
	return converter.MedicineToResponse(med), nil
}

func (u *medicineUsecase) UpdateMedicine(ctx context.Context, id string, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	med, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if med == nil {
		return nil, ErrMedicineNotFound
	}

	converter.ApplyMedicineRequest(med, req)
	if err := u.medicineRepo.Update(ctx, med); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}
	return converter.MedicineToResponse(med), nil
}

func (u *medicineUsecase) DeleteMedicine(ctx context.Context, id string) error {
	deleted, err := u.medicineRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrMedicineNotFound
	}
	return nil
}
