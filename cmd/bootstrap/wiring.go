package bootstrap

import (
	"net/http"

	"hms-backend/config"
	deliveryHttp "hms-backend/internal/delivery/http"
	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/jwt"
	"hms-backend/pkg/metrics"
	"hms-backend/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Services exposes the usecases the CLI drives directly.
type Services struct {
	Auth  usecase.AuthUsecase
	Users usecase.UserUsecase
}

// NewHandler wires every layer on top of the given storage and returns the
// root HTTP handler.
func NewHandler(cfg *config.Config, log *logrus.Logger, repos *repository.Repositories, sessions repository.SessionRepository) (http.Handler, *Services) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	collector := metrics.NewCollector()

	identity := service.NewDoctorIdentityService(log, repos.Users, repos.Doctors)
	audit := service.NewAuditService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.Users, repos.Doctors, sessions, identity, jwtService)
	userUsecase := usecase.NewUserUsecase(log, repos.Users, repos.Doctors, identity, audit)
	patientUsecase := usecase.NewPatientUsecase(log, repos.Patients, repos.Appointments, identity)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.Doctors)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.Appointments, repos.Patients, repos.Doctors, identity)
	labTestUsecase := usecase.NewLabTestUsecase(log, repos.LabTests, identity)
	medicineUsecase := usecase.NewMedicineUsecase(log, repos.Medicines)
	staffUsecase := usecase.NewStaffUsecase(log, repos.Staff)
	invoiceUsecase := usecase.NewInvoiceUsecase(log, repos.Invoices, audit)
	reportUsecase := usecase.NewReportUsecase(log, repos)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator, collector),
		User:        handler.NewUserHandler(userUsecase, customValidator),
		Patient:     handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:      handler.NewDoctorHandler(doctorUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		LabTest:     handler.NewLabTestHandler(labTestUsecase, customValidator),
		Medicine:    handler.NewMedicineHandler(medicineUsecase, customValidator),
		Staff:       handler.NewStaffHandler(staffUsecase, customValidator),
		Invoice:     handler.NewInvoiceHandler(invoiceUsecase, customValidator),
		Report:      handler.NewReportHandler(reportUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, loggingMiddleware, collector)

	return router.Setup(), &Services{
		Auth:  authUsecase,
		Users: userUsecase,
	}
}
