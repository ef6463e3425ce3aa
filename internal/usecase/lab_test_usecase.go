package usecase

import (
	"context"
	"errors"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrLabTestNotFound      = errors.New("lab test not found")
	ErrLabTestForeignDoctor = errors.New("lab test belongs to another doctor")
)

type LabTestUsecase interface {
	ListLabTests(ctx context.Context) ([]dto.LabTestResponse, error)
	GetLabTest(ctx context.Context, id string) (*dto.LabTestResponse, error)
	CreateLabTest(ctx context.Context, req *dto.LabTestRequest) (*dto.LabTestResponse, error)
	UpdateLabTest(ctx context.Context, id string, req *dto.LabTestRequest) (*dto.LabTestResponse, error)
	DeleteLabTest(ctx context.Context, id string) error
}

type labTestUsecase struct {
	log         *logrus.Logger
	labTestRepo repository.LabTestRepository
	identity    service.DoctorIdentityService
}

func NewLabTestUsecase(log *logrus.Logger, labTestRepo repository.LabTestRepository, identity service.DoctorIdentityService) LabTestUsecase {
	return &labTestUsecase{
		log:         log,
		labTestRepo: labTestRepo,
		identity:    identity,
	}
}

func (u *labTestUsecase) ListLabTests(ctx context.Context) ([]dto.LabTestResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	if scope.empty() {
		return []dto.LabTestResponse{}, nil
	}

	var tests []entity.LabTest
	if scope.restricted {
		tests, err = u.labTestRepo.FindByDoctorID(ctx, scope.doctorID)
	} else {
		tests, err = u.labTestRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list lab tests: %+v", err)
		return nil, err
	}

	return converter.LabTestsToResponse(tests), nil
}

func (u *labTestUsecase) GetLabTest(ctx context.Context, id string) (*dto.LabTestResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}

	test, err := u.findOwned(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return converter.LabTestToResponse(test), nil
}

// CreateLabTest orders a test. A linked doctor that omits doctor_id orders it
// under their own Doctor record so it shows up in their scoped listing.
func (u *labTestUsecase) CreateLabTest(ctx context.Context, req *dto.LabTestRequest) (*dto.LabTestResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}

	test := &entity.LabTest{}
	converter.ApplyLabTestRequest(test, req)
	if err := assignDoctor(scope, test); err != nil {
		return nil, err
	}

	if err := u.labTestRepo.Create(ctx, test); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}
	return converter.LabTestToResponse(test), nil
}

func (u *labTestUsecase) UpdateLabTest(ctx context.Context, id string, req *dto.LabTestRequest) (*dto.LabTestResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}

	test, err := u.findOwned(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	converter.ApplyLabTestRequest(test, req)
	if err := assignDoctor(scope, test); err != nil {
		return nil, err
	}

	if err := u.labTestRepo.Update(ctx, test); err != nil {
		u.log.Warnf("Failed to update lab test: %+v", err)
		return nil, err
	}
	return converter.LabTestToResponse(test), nil
}

func (u *labTestUsecase) DeleteLabTest(ctx context.Context, id string) error {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return err
	}
	if scope.restricted {
		if _, err := u.findOwned(ctx, scope, id); err != nil {
			return err
		}
	}

	deleted, err := u.labTestRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete lab test: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrLabTestNotFound
	}
	return nil
}

// findOwned loads a lab test the caller may see. Tests of other doctors are
// reported as not found.
func (u *labTestUsecase) findOwned(ctx context.Context, scope doctorScope, id string) (*entity.LabTest, error) {
	test, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if test == nil || !scope.owns(test.DoctorID) {
		return nil, ErrLabTestNotFound
	}
	return test, nil
}

// assignDoctor defaults doctor_id to the caller's Doctor record. A doctor may
// not file a test under someone else.
func assignDoctor(scope doctorScope, test *entity.LabTest) error {
	if test.DoctorID == "" {
		test.DoctorID = scope.doctorID
		return nil
	}
	if scope.restricted && test.DoctorID != scope.doctorID {
		return ErrLabTestForeignDoctor
	}
	return nil
}
