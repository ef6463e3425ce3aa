package usecase

import (
	"context"
	"errors"

	"hms-backend/config"
	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"
	"hms-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownDoctor      = errors.New("unknown doctor")
	ErrDoctorLinkRole     = errors.New("doctor_id is only valid for doctor accounts")
	ErrMissingIdentity    = errors.New("identity not found in context")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
	// EnsureAdmin creates the configured admin account when no admin exists.
	EnsureAdmin(ctx context.Context, admin config.AdminConfig) error
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	sessionRepo repository.SessionRepository
	identity    service.DoctorIdentityService
	jwtService  *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	sessionRepo repository.SessionRepository,
	identity service.DoctorIdentityService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		sessionRepo: sessionRepo,
		identity:    identity,
		jwtService:  jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.Role(req.Role)
	if req.DoctorID != nil && role != entity.RoleDoctor {
		return nil, ErrDoctorLinkRole
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	doctorID, err := u.doctorLinkFor(ctx, role, req)
	if err != nil {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		DoctorID:     doctorID,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// doctorLinkFor picks the Doctor a new doctor account acts as. An explicit id
// must exist; otherwise the name heuristic runs once and may find nothing.
func (u *authUsecase) doctorLinkFor(ctx context.Context, role entity.Role, req *dto.RegisterRequest) (*string, error) {
	if role != entity.RoleDoctor {
		return nil, nil
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(ctx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrUnknownDoctor
		}
		return &doctor.ID, nil
	}

	doctor, err := u.identity.MatchByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		u.log.Infof("No doctor record matches new doctor account %q", req.Name)
		return nil, nil
	}
	return &doctor.ID, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Store(ctx, user.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		User:  converter.UserToResponse(user),
		Token: token,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrMissingIdentity
	}
	tokenID, _ := middleware.GetTokenIDFromContext(ctx)

	if err := u.sessionRepo.Delete(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrMissingIdentity
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) EnsureAdmin(ctx context.Context, admin config.AdminConfig) error {
	admins, err := u.userRepo.FindByRole(ctx, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to list admins: %+v", err)
		return err
	}
	if len(admins) > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user := &entity.User{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: string(hashedPassword),
		Role:         entity.RoleAdmin,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create default admin: %+v", err)
		return err
	}

	u.log.Warnf("Created default admin %s; change its password", admin.Email)
	return nil
}
