package usecase

import (
	"context"
	"io"
	"time"

	"hms-backend/internal/domain/entity"
	"hms-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func quietAudit() service.AuditService {
	return service.NewAuditService(quietLogger())
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Store(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]entity.Invoice, error) {
	args := m.Called(ctx)
	invs, _ := args.Get(0).([]entity.Invoice)
	return invs, args.Error(1)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*entity.Invoice)
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Patient)
	return p, args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Patient, error) {
	args := m.Called(ctx, ids)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}
