package usecase

import (
	"context"
	"errors"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	// ListAppointments scopes doctors to their own appointments and attaches
	// patient and doctor names for admins.
	ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	identity        service.DoctorIdentityService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	identity service.DoctorIdentityService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		identity:        identity,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	if role, _ := middleware.GetRoleFromContext(ctx); role == entity.RoleAdmin {
		return u.listEnriched(ctx)
	}

	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}
	if scope.empty() {
		return []dto.AppointmentResponse{}, nil
	}

	var appts []entity.Appointment
	if scope.restricted {
		appts, err = u.appointmentRepo.FindByDoctorID(ctx, scope.doctorID)
	} else {
		appts, err = u.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponse(appts), nil
}

// listEnriched loads appointments, patients and doctors concurrently and joins
// the names in memory. The three reads are not isolated from concurrent writes.
func (u *appointmentUsecase) listEnriched(ctx context.Context) ([]dto.AppointmentResponse, error) {
	var (
		appts    []entity.Appointment
		patients []entity.Patient
		doctors  []entity.Doctor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		appts, err = u.appointmentRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		patients, err = u.patientRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		doctors, err = u.doctorRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load appointment listing: %+v", err)
		return nil, err
	}

	patientNames := make(map[string]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.Name
	}
	doctorNames := make(map[string]string, len(doctors))
	for _, d := range doctors {
		doctorNames[d.ID] = d.Name
	}

	responses := converter.AppointmentsToResponse(appts)
	for i := range responses {
		responses[i].AppointmentNames = &dto.AppointmentNames{
			PatientName: lookupName(patientNames, responses[i].PatientID),
			DoctorName:  lookupName(doctorNames, responses[i].DoctorID),
		}
	}
	return responses, nil
}

func lookupName(names map[string]string, id string) *string {
	name, ok := names[id]
	if !ok {
		return nil
	}
	return &name
}

// GetAppointment hides other doctors' appointments from a doctor as not found.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	scope, err := scopeFor(ctx, u.identity)
	if err != nil {
		return nil, err
	}

	appt, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appt == nil || !scope.owns(appt.DoctorID) {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appt), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appt := &entity.Appointment{}
	converter.ApplyAppointmentRequest(appt, req)

	if err := u.appointmentRepo.Create(ctx, appt); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	return converter.AppointmentToResponse(appt), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	converter.ApplyAppointmentRequest(appt, req)
	if err := u.appointmentRepo.Update(ctx, appt); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	return converter.AppointmentToResponse(appt), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	deleted, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
