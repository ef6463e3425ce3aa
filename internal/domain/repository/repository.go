package repository

import (
	"context"
	"errors"

	"hms-backend/internal/domain/entity"
)

// ErrDuplicateKey is returned when a write violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// Repository is the CRUD surface shared by every entity store.
// Lookups return nil, nil when the record does not exist.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	// Update replaces the stored record with the same id.
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) (int64, error)
}

// Repositories bundles the stores of one backend.
type Repositories struct {
	Users        UserRepository
	Doctors      DoctorRepository
	Patients     PatientRepository
	Appointments AppointmentRepository
	LabTests     LabTestRepository
	Medicines    MedicineRepository
	Invoices     InvoiceRepository
	Staff        StaffRepository
}

type DoctorRepository interface {
	Repository[entity.Doctor]
}

type PatientRepository interface {
	Repository[entity.Patient]
	FindByIDs(ctx context.Context, ids []string) ([]entity.Patient, error)
}

type AppointmentRepository interface {
	Repository[entity.Appointment]
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error)
}

type LabTestRepository interface {
	Repository[entity.LabTest]
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.LabTest, error)
}

type MedicineRepository interface {
	Repository[entity.Medicine]
}

type InvoiceRepository interface {
	Repository[entity.Invoice]
}

type StaffRepository interface {
	Repository[entity.Staff]
}
