package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hms-backend/config"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/repository/memory"
	"hms-backend/internal/service"
	"hms-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func setupAuthWithMocks() (AuthUsecase, *MockUserRepository, *MockSessionRepository) {
	users := &MockUserRepository{}
	sessions := &MockSessionRepository{}
	repos := memory.NewRepositories()
	identity := service.NewDoctorIdentityService(quietLogger(), users, repos.Doctors)
	uc := NewAuthUsecase(quietLogger(), users, repos.Doctors, sessions, identity, newJWT())
	return uc, users, sessions
}

func setupAuthWithMemory() (AuthUsecase, *repository.Repositories) {
	repos := memory.NewRepositories()
	identity := service.NewDoctorIdentityService(quietLogger(), repos.Users, repos.Doctors)
	uc := NewAuthUsecase(quietLogger(), repos.Users, repos.Doctors, &MockSessionRepository{}, identity, newJWT())
	return uc, repos
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, users, _ := setupAuthWithMocks()
	users.On("FindByEmail", mock.Anything, "ghost@x.io").Return(nil, nil)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@x.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users, _ := setupAuthWithMocks()
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "a@x.io").
		Return(&entity.User{Base: entity.Base{ID: "u1"}, Email: "a@x.io", PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.io", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoresSession(t *testing.T) {
	uc, users, sessions := setupAuthWithMocks()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "a@x.io").
		Return(&entity.User{Base: entity.Base{ID: "u1"}, Email: "a@x.io", PasswordHash: string(hash), Role: entity.RoleNurse}, nil)
	sessions.On("Store", mock.Anything, "u1", mock.AnythingOfType("string"), time.Hour).Return(nil)

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "nurse", resp.User.Role)

	claims, err := newJWT().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "nurse", claims.Role)
	sessions.AssertCalled(t, "Store", mock.Anything, "u1", claims.ID, time.Hour)
}

func TestLogin_SessionStoreFailure(t *testing.T) {
	uc, users, sessions := setupAuthWithMocks()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "a@x.io").
		Return(&entity.User{Base: entity.Base{ID: "u1"}, PasswordHash: string(hash)}, nil)
	sessions.On("Store", mock.Anything, "u1", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.io", Password: "pw"})
	assert.EqualError(t, err, "redis down")
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, users, _ := setupAuthWithMocks()
	users.On("FindByEmail", mock.Anything, "a@x.io").Return(&entity.User{Email: "a@x.io"}, nil)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{Name: "A", Email: "a@x.io", Password: "pw", Role: "nurse"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateKeyRace(t *testing.T) {
	uc, users, _ := setupAuthWithMocks()
	users.On("FindByEmail", mock.Anything, "a@x.io").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{Name: "A", Email: "a@x.io", Password: "pw", Role: "nurse"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_DoctorLinks(t *testing.T) {
	ctx := context.Background()
	uc, repos := setupAuthWithMemory()

	alice := &entity.Doctor{Name: "Dr. Alice Williams"}
	require.NoError(t, repos.Doctors.Create(ctx, alice))

	byName, err := uc.Register(ctx, &dto.RegisterRequest{Name: "alice williams", Email: "a@x.io", Password: "pw", Role: "doctor"})
	require.NoError(t, err)
	require.NotNil(t, byName.DoctorID)
	assert.Equal(t, alice.ID, *byName.DoctorID)

	noMatch, err := uc.Register(ctx, &dto.RegisterRequest{Name: "Dr nobody", Email: "n@x.io", Password: "pw", Role: "doctor"})
	require.NoError(t, err)
	assert.Nil(t, noMatch.DoctorID)

	explicit, err := uc.Register(ctx, &dto.RegisterRequest{Name: "Someone Else", Email: "e@x.io", Password: "pw", Role: "doctor", DoctorID: &alice.ID})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, *explicit.DoctorID)

	unknown := "00000000-0000-0000-0000-000000000000"
	_, err = uc.Register(ctx, &dto.RegisterRequest{Name: "X", Email: "x@x.io", Password: "pw", Role: "doctor", DoctorID: &unknown})
	assert.ErrorIs(t, err, ErrUnknownDoctor)

	_, err = uc.Register(ctx, &dto.RegisterRequest{Name: "Y", Email: "y@x.io", Password: "pw", Role: "nurse", DoctorID: &alice.ID})
	assert.ErrorIs(t, err, ErrDoctorLinkRole)
}

func TestGetCurrentUser(t *testing.T) {
	uc, users, _ := setupAuthWithMocks()
	users.On("FindByID", mock.Anything, "u1").Return(nil, nil)

	_, err := uc.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrMissingIdentity)

	ctx := middleware.ContextWithIdentity(context.Background(), "u1", entity.RoleAdmin, "t1")
	_, err = uc.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogout_DeletesCurrentSession(t *testing.T) {
	uc, _, sessions := setupAuthWithMocks()
	sessions.On("Delete", mock.Anything, "u1", "t1").Return(nil)

	ctx := middleware.ContextWithIdentity(context.Background(), "u1", entity.RoleNurse, "t1")
	require.NoError(t, uc.Logout(ctx))
	sessions.AssertExpectations(t)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	uc, repos := setupAuthWithMemory()
	admin := config.AdminConfig{Name: "Admin", Email: "admin@hms.local", Password: "admin123"}

	require.NoError(t, uc.EnsureAdmin(ctx, admin))
	require.NoError(t, uc.EnsureAdmin(ctx, admin))

	admins, err := repos.Users.FindByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].PasswordHash), []byte("admin123")))
}
