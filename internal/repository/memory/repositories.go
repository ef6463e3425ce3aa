package memory

import (
	"context"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"
)

type userRepository struct {
	memoryRepository[entity.User, *entity.User]
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	users := r.filter(func(u *entity.User) bool { return u.Email == email })
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) FindByRole(_ context.Context, role entity.Role) ([]entity.User, error) {
	return r.filter(func(u *entity.User) bool { return u.Role == role }), nil
}

type doctorRepository struct {
	memoryRepository[entity.Doctor, *entity.Doctor]
}

type patientRepository struct {
	memoryRepository[entity.Patient, *entity.Patient]
}

func (r *patientRepository) FindByIDs(_ context.Context, ids []string) ([]entity.Patient, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.filter(func(p *entity.Patient) bool {
		_, ok := wanted[p.ID]
		return ok
	}), nil
}

type appointmentRepository struct {
	memoryRepository[entity.Appointment, *entity.Appointment]
}

func (r *appointmentRepository) FindByDoctorID(_ context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.DoctorID == doctorID }), nil
}

type labTestRepository struct {
	memoryRepository[entity.LabTest, *entity.LabTest]
}

func (r *labTestRepository) FindByDoctorID(_ context.Context, doctorID string) ([]entity.LabTest, error) {
	return r.filter(func(t *entity.LabTest) bool { return t.DoctorID == doctorID }), nil
}

type medicineRepository struct {
	memoryRepository[entity.Medicine, *entity.Medicine]
}

type invoiceRepository struct {
	memoryRepository[entity.Invoice, *entity.Invoice]
}

type staffRepository struct {
	memoryRepository[entity.Staff, *entity.Staff]
}

// NewRepositories returns an empty set of in-memory stores.
func NewRepositories() *domainRepo.Repositories {
	users := &userRepository{}
	users.unique = func(u *entity.User) string { return u.Email }

	return &domainRepo.Repositories{
		Users:        users,
		Doctors:      &doctorRepository{},
		Patients:     &patientRepository{},
		Appointments: &appointmentRepository{},
		LabTests:     &labTestRepository{},
		Medicines:    &medicineRepository{},
		Invoices:     &invoiceRepository{},
		Staff:        &staffRepository{},
	}
}
