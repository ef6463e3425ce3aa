package service

import (
	"context"
	"regexp"
	"strings"

	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var doctorPrefix = regexp.MustCompile(`^dr\.?\s*`)

// NormalizeDoctorName lower-cases the name, drops a leading "dr" or "dr."
// title and trims the result.
func NormalizeDoctorName(name string) string {
	return strings.TrimSpace(doctorPrefix.ReplaceAllString(strings.ToLower(name), ""))
}

// MatchDoctorByName returns the first doctor whose normalized name equals the
// normalized user name, or nil.
func MatchDoctorByName(userName string, doctors []entity.Doctor) *entity.Doctor {
	want := NormalizeDoctorName(userName)
	for i := range doctors {
		if NormalizeDoctorName(doctors[i].Name) == want {
			return &doctors[i]
		}
	}
	return nil
}

// BackfillResult summarizes one run of the link migration.
type BackfillResult struct {
	Scanned   int `json:"scanned"`
	Linked    int `json:"linked"`
	Unmatched int `json:"unmatched"`
}

// DoctorIdentityService maps doctor accounts onto Doctor records.
type DoctorIdentityService interface {
	// ResolveDoctorID returns the linked doctor id of a user. ok is false for
	// non-doctor users and doctor users without a link.
	ResolveDoctorID(ctx context.Context, userID string) (doctorID string, ok bool, err error)
	// MatchByName runs the name heuristic once against every doctor.
	MatchByName(ctx context.Context, userName string) (*entity.Doctor, error)
	// Backfill links every unlinked doctor account whose name matches a doctor.
	Backfill(ctx context.Context) (*BackfillResult, error)
}

type doctorIdentityService struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
}

func NewDoctorIdentityService(log *logrus.Logger, userRepo repository.UserRepository, doctorRepo repository.DoctorRepository) DoctorIdentityService {
	return &doctorIdentityService{
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
	}
}

func (s *doctorIdentityService) ResolveDoctorID(ctx context.Context, userID string) (string, bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Warnf("Failed to find user: %+v", err)
		return "", false, err
	}
	if user == nil || user.Role != entity.RoleDoctor || user.DoctorID == nil {
		return "", false, nil
	}
	return *user.DoctorID, true, nil
}

func (s *doctorIdentityService) MatchByName(ctx context.Context, userName string) (*entity.Doctor, error) {
	doctors, err := s.doctorRepo.FindAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return MatchDoctorByName(userName, doctors), nil
}

func (s *doctorIdentityService) Backfill(ctx context.Context) (*BackfillResult, error) {
	users, err := s.userRepo.FindByRole(ctx, entity.RoleDoctor)
	if err != nil {
		s.log.Warnf("Failed to list doctor users: %+v", err)
		return nil, err
	}

	doctors, err := s.doctorRepo.FindAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	result := &BackfillResult{}
	for i := range users {
		user := &users[i]
		if user.DoctorID != nil {
			continue
		}
		result.Scanned++

		doctor := MatchDoctorByName(user.Name, doctors)
		if doctor == nil {
			result.Unmatched++
			continue
		}

		doctorID := doctor.ID
		user.DoctorID = &doctorID
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.log.Warnf("Failed to link user %s to doctor %s: %+v", user.ID, doctorID, err)
			return nil, err
		}
		result.Linked++
		s.log.WithFields(logrus.Fields{"user_id": user.ID, "doctor_id": doctorID}).Info("Linked doctor account")
	}

	return result, nil
}
