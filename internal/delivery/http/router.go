package http

import (
	"net/http"

	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/pkg/metrics"
	"hms-backend/pkg/response"

	"github.com/gorilla/mux"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Patient     *handler.PatientHandler
	Doctor      *handler.DoctorHandler
	Appointment *handler.AppointmentHandler
	LabTest     *handler.LabTestHandler
	Medicine    *handler.MedicineHandler
	Staff       *handler.StaffHandler
	Invoice     *handler.InvoiceHandler
	Report      *handler.ReportHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	metrics           *metrics.Collector
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	collector *metrics.Collector,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		metrics:           collector,
	}
}

// crud is one resource with its write allow-list. Reads only need a login.
type crud struct {
	path       string
	writeRoles []entity.Role
	list       http.HandlerFunc
	get        http.HandlerFunc
	create     http.HandlerFunc
	update     http.HandlerFunc
	delete     http.HandlerFunc
}

// Setup mounts every route. The returned handler applies CORS in front of
// routing so preflight requests are answered for any path.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metrics.HTTPMiddleware)

	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", r.handlers.Auth.Login).Methods(http.MethodPost)

	// Everything below needs a valid token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/register", r.handlers.Auth.Register).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.handlers.Auth.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", r.handlers.Auth.Logout).Methods(http.MethodPost)

	// Admin routes
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.handlers.User.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/doctor-links/backfill", r.handlers.User.BackfillDoctorLinks).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/doctor", r.handlers.User.LinkDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/reports/summary", r.handlers.Report.Summary).Methods(http.MethodGet)

	h := r.handlers
	resources := []crud{
		{"/patients", []entity.Role{entity.RoleAdmin, entity.RoleReceptionist},
			h.Patient.ListPatients, h.Patient.GetPatient, h.Patient.CreatePatient, h.Patient.UpdatePatient, h.Patient.DeletePatient},
		{"/doctors", []entity.Role{entity.RoleAdmin},
			h.Doctor.ListDoctors, h.Doctor.GetDoctor, h.Doctor.CreateDoctor, h.Doctor.UpdateDoctor, h.Doctor.DeleteDoctor},
		{"/appointments", []entity.Role{entity.RoleAdmin, entity.RoleReceptionist},
			h.Appointment.ListAppointments, h.Appointment.GetAppointment, h.Appointment.CreateAppointment, h.Appointment.UpdateAppointment, h.Appointment.DeleteAppointment},
		{"/lab-tests", []entity.Role{entity.RoleAdmin, entity.RoleDoctor},
			h.LabTest.ListLabTests, h.LabTest.GetLabTest, h.LabTest.CreateLabTest, h.LabTest.UpdateLabTest, h.LabTest.DeleteLabTest},
		{"/medicines", []entity.Role{entity.RoleAdmin, entity.RolePharmacist},
			h.Medicine.ListMedicines, h.Medicine.GetMedicine, h.Medicine.CreateMedicine, h.Medicine.UpdateMedicine, h.Medicine.DeleteMedicine},
		{"/staff", []entity.Role{entity.RoleAdmin},
			h.Staff.ListStaff, h.Staff.GetStaff, h.Staff.CreateStaff, h.Staff.UpdateStaff, h.Staff.DeleteStaff},
		{"/invoices", []entity.Role{entity.RoleAdmin},
			h.Invoice.ListInvoices, h.Invoice.GetInvoice, h.Invoice.CreateInvoice, h.Invoice.UpdateInvoice, h.Invoice.DeleteInvoice},
	}
	for _, res := range resources {
		r.mount(protected, res)
	}

	pay := middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist)
	protected.Handle("/invoices/{id}/pay", pay(http.HandlerFunc(h.Invoice.PayInvoice))).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) mount(protected *mux.Router, res crud) {
	write := middleware.RequireRole(res.writeRoles...)

	protected.HandleFunc(res.path, res.list).Methods(http.MethodGet)
	protected.HandleFunc(res.path+"/{id}", res.get).Methods(http.MethodGet)
	protected.Handle(res.path, write(res.create)).Methods(http.MethodPost)
	protected.Handle(res.path+"/{id}", write(res.update)).Methods(http.MethodPut)
	protected.Handle(res.path+"/{id}", write(res.delete)).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
