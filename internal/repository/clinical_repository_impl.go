package repository

import (
	"context"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	gormRepository[entity.Doctor, *entity.Doctor]
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{gormRepository[entity.Doctor, *entity.Doctor]{db: db}}
}

type patientRepository struct {
	gormRepository[entity.Patient, *entity.Patient]
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{gormRepository[entity.Patient, *entity.Patient]{db: db}}
}

func (r *patientRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Patient, error) {
	if len(ids) == 0 {
		return []entity.Patient{}, nil
	}
	return r.find(ctx, "id IN ?", ids)
}

type appointmentRepository struct {
	gormRepository[entity.Appointment, *entity.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{gormRepository[entity.Appointment, *entity.Appointment]{db: db}}
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.find(ctx, "doctor_id = ?", doctorID)
}

type labTestRepository struct {
	gormRepository[entity.LabTest, *entity.LabTest]
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{gormRepository[entity.LabTest, *entity.LabTest]{db: db}}
}

func (r *labTestRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.LabTest, error) {
	return r.find(ctx, "doctor_id = ?", doctorID)
}
