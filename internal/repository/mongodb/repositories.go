package mongodb

import (
	"context"
	"fmt"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	mongoRepository[entity.User, *entity.User]
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.find(ctx, bson.M{"email": email})
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

type doctorRepository struct {
	mongoRepository[entity.Doctor, *entity.Doctor]
}

type patientRepository struct {
	mongoRepository[entity.Patient, *entity.Patient]
}

func (r *patientRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Patient, error) {
	if len(ids) == 0 {
		return []entity.Patient{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

type appointmentRepository struct {
	mongoRepository[entity.Appointment, *entity.Appointment]
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.find(ctx, bson.M{"doctor_id": doctorID})
}

type labTestRepository struct {
	mongoRepository[entity.LabTest, *entity.LabTest]
}

func (r *labTestRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.LabTest, error) {
	return r.find(ctx, bson.M{"doctor_id": doctorID})
}

type medicineRepository struct {
	mongoRepository[entity.Medicine, *entity.Medicine]
}

type invoiceRepository struct {
	mongoRepository[entity.Invoice, *entity.Invoice]
}

type staffRepository struct {
	mongoRepository[entity.Staff, *entity.Staff]
}

// NewRepositories builds every store on top of one database handle.
func NewRepositories(db *mongo.Database) *domainRepo.Repositories {
	return &domainRepo.Repositories{
		Users:        &userRepository{newMongoRepository[entity.User](db, entity.User{}.TableName())},
		Doctors:      &doctorRepository{newMongoRepository[entity.Doctor](db, entity.Doctor{}.TableName())},
		Patients:     &patientRepository{newMongoRepository[entity.Patient](db, entity.Patient{}.TableName())},
		Appointments: &appointmentRepository{newMongoRepository[entity.Appointment](db, entity.Appointment{}.TableName())},
		LabTests:     &labTestRepository{newMongoRepository[entity.LabTest](db, entity.LabTest{}.TableName())},
		Medicines:    &medicineRepository{newMongoRepository[entity.Medicine](db, entity.Medicine{}.TableName())},
		Invoices:     &invoiceRepository{newMongoRepository[entity.Invoice](db, entity.Invoice{}.TableName())},
		Staff:        &staffRepository{newMongoRepository[entity.Staff](db, entity.Staff{}.TableName())},
	}
}

// EnsureIndexes creates the unique email index and the lookup indexes used by
// doctor-scoped listings. Safe to call on every boot.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		entity.User{}.TableName(): {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		entity.Appointment{}.TableName(): {Keys: bson.D{{Key: "doctor_id", Value: 1}}},
		entity.LabTest{}.TableName():     {Keys: bson.D{{Key: "doctor_id", Value: 1}}},
	}

	for collection, model := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", collection, err)
		}
	}
	return nil
}
