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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	// ListPatients returns every patient, or for doctors only the patients
	// they have an appointment with.
	ListPatients(ctx context.Context) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id string, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}

type patientUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	identity        service.DoctorIdentityService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	identity service.DoctorIdentityService,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		identity:        identity,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	if scope.empty() {
		return []dto.PatientResponse{}, nil
	}

	var patients []entity.Patient
	if scope.restricted {
		patients, err = u.patientsOfDoctor(ctx, scope.doctorID)
	} else {
		patients, err = u.patientRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponse(patients), nil
}

func (u *patientUsecase) patientsOfDoctor(ctx context.Context, doctorID string) ([]entity.Patient, error) {
	appts, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(appts))
	ids := make([]string, 0, len(appts))
	for _, appt := range appts {
		if _, ok := seen[appt.PatientID]; ok {
			continue
		}
		seen[appt.PatientID] = struct{}{}
		ids = append(ids, appt.PatientID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return u.patientRepo.FindByIDs(ctx, ids)
}

// GetPatient only shows a doctor the patients they have an appointment with.
func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	if scope.empty() {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if scope.restricted {
		treats, err := u.treatedBy(ctx, scope.doctorID, patient.ID)
		if err != nil {
			u.log.Warnf("Failed to check patient appointments: %+v", err)
			return nil, err
		}
		if !treats {
			return nil, ErrPatientNotFound
		}
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) treatedBy(ctx context.Context, doctorID, patientID string) (bool, error) {
	appts, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return false, err
	}
	for _, appt := range appts {
		if appt.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{}
	converter.ApplyPatientRequest(patient, req)

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	converter.ApplyPatientRequest(patient, req)
	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	deleted, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrPatientNotFound
	}
	return nil
}
