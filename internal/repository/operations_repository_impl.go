package repository

import (
	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type medicineRepository struct {
	gormRepository[entity.Medicine, *entity.Medicine]
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{gormRepository[entity.Medicine, *entity.Medicine]{db: db}}
}

type invoiceRepository struct {
	gormRepository[entity.Invoice, *entity.Invoice]
}

func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{gormRepository[entity.Invoice, *entity.Invoice]{db: db}}
}

type staffRepository struct {
	gormRepository[entity.Staff, *entity.Staff]
}

func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{gormRepository[entity.Staff, *entity.Staff]{db: db}}
}

// NewRepositories builds every store on top of one gorm connection.
func NewRepositories(db *gorm.DB) *domainRepo.Repositories {
	return &domainRepo.Repositories{
		Users:        NewUserRepository(db),
		Doctors:      NewDoctorRepository(db),
		Patients:     NewPatientRepository(db),
		Appointments: NewAppointmentRepository(db),
		LabTests:     NewLabTestRepository(db),
		Medicines:    NewMedicineRepository(db),
		Invoices:     NewInvoiceRepository(db),
		Staff:        NewStaffRepository(db),
	}
}
