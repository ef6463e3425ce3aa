package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hms-backend/config"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/repository/memory"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@hms.local"
	adminPassword = "admin123"
)

// sessionMap is a process-local session store so logout can be observed.
type sessionMap struct {
	mu   sync.Mutex
	live map[string]bool
}

func (s *sessionMap) Store(_ context.Context, userID, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[userID+":"+tokenID] = true
	return nil
}

func (s *sessionMap) Exists(_ context.Context, userID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[userID+":"+tokenID], nil
}

func (s *sessionMap) Delete(_ context.Context, userID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, userID+":"+tokenID)
	return nil
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	repos   *repository.Repositories
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test"},
		DB:   config.DBConfig{Driver: config.DriverMemory},
		JWT:  config.JWTConfig{Secret: "test-secret", Expiry: time.Hour},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Admin: config.AdminConfig{
			Name:     "Admin",
			Email:    adminEmail,
			Password: adminPassword,
		},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	repos := memory.NewRepositories()
	handler, services := NewHandler(cfg, log, repos, &sessionMap{live: map[string]bool{}})
	require.NoError(t, services.Auth.EnsureAdmin(context.Background(), cfg.Admin))

	return &testServer{t: t, handler: handler, repos: repos}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(s.t, rec, &out)
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

// register creates an account with the admin token and logs it in.
func (s *testServer) register(adminToken, name, email, role string) (string, map[string]any) {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/register", adminToken, map[string]string{
		"name": name, "email": email, "password": "secret", "role": role,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		User map[string]any `json:"user"`
	}
	decode(s.t, rec, &out)
	return s.login(email, "secret"), out.User
}

func (s *testServer) create(token, path string, body any) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, path, token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out map[string]any
	decode(s.t, rec, &out)
	id, _ := out["id"].(string)
	require.NotEmpty(s.t, id)
	return id
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestLogin_RoleRoundTrip(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	nurseToken, nurse := s.register(adminToken, "Nina", "nina@hms.local", "nurse")

	rec := s.do(http.MethodGet, "/api/auth/me", nurseToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		User map[string]any `json:"user"`
	}
	decode(t, rec, &me)
	assert.Equal(t, "nurse", me.User["role"])
	assert.Equal(t, nurse["id"], me.User["id"])
	assert.NotContains(t, me.User, "password")
	assert.NotContains(t, me.User, "password_hash")
}

func TestLogin_Errors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing credentials", errorOf(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorOf(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@hms.local", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorOf(t, rec))
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/patients", "", map[string]any{"name": "Ann"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", errorOf(t, rec))

	rec = s.do(http.MethodPost, "/api/patients", "not-a-jwt", map[string]any{"name": "Ann"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorOf(t, rec))

	patients, err := s.repos.Patients.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestLogout_RevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)

	rec := s.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorOf(t, rec))
}

func TestRegister_NonAdminForbidden(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	receptionToken, _ := s.register(adminToken, "Rita", "rita@hms.local", "receptionist")

	for _, body := range []any{
		map[string]string{"name": "X", "email": "x@hms.local", "password": "p", "role": "admin"},
		map[string]string{},
		nil,
	} {
		rec := s.do(http.MethodPost, "/api/auth/register", receptionToken, body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Forbidden: Admins only", errorOf(t, rec))
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	rec := s.do(http.MethodPost, "/api/auth/register", adminToken, map[string]string{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing fields", errorOf(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/register", adminToken, map[string]string{
		"name": "Dup", "email": adminEmail, "password": "p", "role": "nurse",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", errorOf(t, rec))
}

func TestRoleAuthorizer(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	pharmToken, _ := s.register(adminToken, "Phil", "phil@hms.local", "pharmacist")

	rec := s.do(http.MethodPost, "/api/patients", pharmToken, map[string]any{"name": "Ann"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", errorOf(t, rec))

	s.create(pharmToken, "/api/medicines", map[string]any{"name": "Aspirin", "stock": 10, "price": "2.5"})

	rec = s.do(http.MethodGet, "/api/medicines", pharmToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/users", pharmToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	decode(t, rec, &users)
	assert.Len(t, users, 2)
}

func TestPatientLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)

	id := s.create(token, "/api/patients", map[string]any{"name": "Ann", "age": 34, "gender": "f", "contact": "555"})

	rec := s.do(http.MethodGet, "/api/patients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
	assert.Equal(t, "Ann", list[0]["name"])

	rec = s.do(http.MethodPut, "/api/patients/"+id, token, map[string]any{"name": "Ann B", "age": 35})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decode(t, rec, &updated)
	assert.Equal(t, "Ann B", updated["name"])

	rec = s.do(http.MethodDelete, "/api/patients/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/patients", token, nil)
	decode(t, rec, &list)
	assert.Empty(t, list)

	rec = s.do(http.MethodGet, "/api/patients/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", errorOf(t, rec))
}

func TestMalformedIDIsNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)

	for _, path := range []string{"/api/patients/123", "/api/doctors/not-an-id", "/api/invoices/zzz"} {
		rec := s.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Not found", errorOf(t, rec), path)
	}
}

func TestValidationFields(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)

	rec := s.do(http.MethodPost, "/api/appointments", token, map[string]any{"date": "2024-01-01"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, rec, &body)
	assert.Contains(t, body.Fields, "patient_id")
	assert.Contains(t, body.Fields, "doctor_id")
}

func TestDoctorScoping(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	alice := s.create(adminToken, "/api/doctors", map[string]any{"name": "Dr. Alice Williams", "specialty": "Cardiology", "availability": "Mon, Wed"})
	bob := s.create(adminToken, "/api/doctors", map[string]any{"name": "Dr. Bob Stone", "specialty": "Neurology"})
	ann := s.create(adminToken, "/api/patients", map[string]any{"name": "Ann"})
	ben := s.create(adminToken, "/api/patients", map[string]any{"name": "Ben"})

	aliceAppt := s.create(adminToken, "/api/appointments", map[string]any{"patient_id": ann, "doctor_id": alice, "date": "2024-05-01", "time": "09:00"})
	s.create(adminToken, "/api/appointments", map[string]any{"patient_id": ben, "doctor_id": bob, "date": "2024-05-02", "time": "10:00"})

	aliceToken, aliceUser := s.register(adminToken, "alice williams", "alice@hms.local", "doctor")
	assert.Equal(t, alice, aliceUser["doctor_id"])

	rec := s.do(http.MethodGet, "/api/appointments", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var appts []map[string]any
	decode(t, rec, &appts)
	require.Len(t, appts, 1)
	assert.Equal(t, aliceAppt, appts[0]["id"])
	assert.NotContains(t, appts[0], "patient_name")
	assert.NotContains(t, appts[0], "doctor_name")

	rec = s.do(http.MethodGet, "/api/patients", aliceToken, nil)
	var patients []map[string]any
	decode(t, rec, &patients)
	require.Len(t, patients, 1)
	assert.Equal(t, ann, patients[0]["id"])

	nobodyToken, nobody := s.register(adminToken, "Dr nobody", "nobody@hms.local", "doctor")
	assert.Nil(t, nobody["doctor_id"])

	rec = s.do(http.MethodGet, "/api/appointments", nobodyToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdminAppointmentEnrichment(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)

	doc := s.create(token, "/api/doctors", map[string]any{"name": "Dr. Alice Williams"})
	ann := s.create(token, "/api/patients", map[string]any{"name": "Ann"})
	gone := s.create(token, "/api/patients", map[string]any{"name": "Gone"})
	s.create(token, "/api/appointments", map[string]any{"patient_id": ann, "doctor_id": doc, "date": "2024-05-01"})
	s.create(token, "/api/appointments", map[string]any{"patient_id": gone, "doctor_id": doc, "date": "2024-05-02"})

	rec := s.do(http.MethodDelete, "/api/patients/"+gone, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	first := s.do(http.MethodGet, "/api/appointments", token, nil)
	second := s.do(http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var appts []map[string]any
	decode(t, first, &appts)
	require.Len(t, appts, 2)
	names := map[string]any{}
	for _, a := range appts {
		assert.Equal(t, "Dr. Alice Williams", a["doctor_name"])
		names[a["patient_id"].(string)] = a["patient_name"]
	}
	assert.Equal(t, "Ann", names[ann])
	assert.Contains(t, names, gone)
	assert.Nil(t, names[gone])
}

func TestInvoicePayAndSummary(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	receptionToken, _ := s.register(adminToken, "Rita", "rita@hms.local", "receptionist")

	ann := s.create(adminToken, "/api/patients", map[string]any{"name": "Ann"})
	paid := s.create(adminToken, "/api/invoices", map[string]any{"patient_id": ann, "total": "100.25"})
	s.create(adminToken, "/api/invoices", map[string]any{"patient_id": ann, "total": "40"})

	rec := s.do(http.MethodPost, "/api/invoices/"+paid+"/pay", receptionToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var invoice map[string]any
	decode(t, rec, &invoice)
	assert.Equal(t, "paid", invoice["status"])

	rec = s.do(http.MethodPost, "/api/invoices/"+paid+"/pay", receptionToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Invoice already paid", errorOf(t, rec))

	rec = s.do(http.MethodGet, "/api/reports/summary", receptionToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/reports/summary", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	decode(t, rec, &summary)
	assert.EqualValues(t, 1, summary["patients"])
	assert.Equal(t, "100.25", summary["revenue"])
	assert.Equal(t, "40", summary["outstanding"])
}

func TestDoctorLinkAdministration(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	_, user := s.register(adminToken, "Dr nobody", "nobody@hms.local", "doctor")
	userID := user["id"].(string)
	s.create(adminToken, "/api/doctors", map[string]any{"name": "Nobody"})

	rec := s.do(http.MethodPost, "/api/users/doctor-links/backfill", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"scanned":1,"linked":1,"unmatched":0}`, rec.Body.String())

	rec = s.do(http.MethodPut, "/api/users/"+userID+"/doctor", adminToken, map[string]any{"doctor_id": nil})
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		User map[string]any `json:"user"`
	}
	decode(t, rec, &out)
	assert.Nil(t, out.User["doctor_id"])
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not allowed by CORS", errorOf(t, rec))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.login(adminEmail, adminPassword)

	rec := s.do(http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hms_auth_attempts_total{outcome="success"} 1`)
	assert.Contains(t, body, `route="/api/auth/login"`)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/nothing-here", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", errorOf(t, rec))
}

func TestDoctorScoping_ByIDAndWrites(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	alice := s.create(adminToken, "/api/doctors", map[string]any{"name": "Dr. Alice Williams"})
	bob := s.create(adminToken, "/api/doctors", map[string]any{"name": "Dr. Bob Stone"})
	ann := s.create(adminToken, "/api/patients", map[string]any{"name": "Ann"})
	ben := s.create(adminToken, "/api/patients", map[string]any{"name": "Ben"})
	aliceAppt := s.create(adminToken, "/api/appointments", map[string]any{"patient_id": ann, "doctor_id": alice, "date": "2024-05-01"})
	bobAppt := s.create(adminToken, "/api/appointments", map[string]any{"patient_id": ben, "doctor_id": bob, "date": "2024-05-02"})
	aliceTest := s.create(adminToken, "/api/lab-tests", map[string]any{"name": "CBC", "patient_id": ann, "doctor_id": alice})
	bobTest := s.create(adminToken, "/api/lab-tests", map[string]any{"name": "MRI", "patient_id": ben, "doctor_id": bob})

	aliceToken, _ := s.register(adminToken, "alice williams", "alice@hms.local", "doctor")

	t.Run("lab test listing is scoped", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/lab-tests", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var tests []map[string]any
		decode(t, rec, &tests)
		require.Len(t, tests, 1)
		assert.Equal(t, aliceTest, tests[0]["id"])
	})

	t.Run("reads by id", func(t *testing.T) {
		for path, want := range map[string]int{
			"/api/appointments/" + aliceAppt: http.StatusOK,
			"/api/appointments/" + bobAppt:   http.StatusNotFound,
			"/api/lab-tests/" + aliceTest:    http.StatusOK,
			"/api/lab-tests/" + bobTest:      http.StatusNotFound,
			"/api/patients/" + ann:           http.StatusOK,
			"/api/patients/" + ben:           http.StatusNotFound,
		} {
			rec := s.do(http.MethodGet, path, aliceToken, nil)
			assert.Equal(t, want, rec.Code, path)
			if want == http.StatusNotFound {
				assert.Equal(t, "Not found", errorOf(t, rec), path)
			}
		}
	})

	t.Run("writes to another doctor's lab test", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/api/lab-tests/"+bobTest, aliceToken, map[string]any{"name": "Changed"})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.do(http.MethodDelete, "/api/lab-tests/"+bobTest, aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.do(http.MethodGet, "/api/lab-tests/"+bobTest, adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var test map[string]any
		decode(t, rec, &test)
		assert.Equal(t, "MRI", test["name"])
		assert.Equal(t, bob, test["doctor_id"])
	})

	t.Run("create under another doctor", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/lab-tests", aliceToken, map[string]any{"name": "X-Ray", "doctor_id": bob})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Forbidden", errorOf(t, rec))
	})

	t.Run("own lab test", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/api/lab-tests/"+aliceTest, aliceToken, map[string]any{"name": "CBC panel", "status": "completed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var test map[string]any
		decode(t, rec, &test)
		assert.Equal(t, "CBC panel", test["name"])
		assert.Equal(t, alice, test["doctor_id"])

		rec = s.do(http.MethodDelete, "/api/lab-tests/"+aliceTest, aliceToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unlinked doctor", func(t *testing.T) {
		nobodyToken, _ := s.register(adminToken, "Dr nobody", "nobody@hms.local", "doctor")

		rec := s.do(http.MethodGet, "/api/patients/"+ann, nobodyToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		rec = s.do(http.MethodGet, "/api/appointments/"+aliceAppt, nobodyToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other roles are not scoped", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/appointments/"+bobAppt, adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		rec = s.do(http.MethodGet, "/api/patients/"+ben, adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	token := s.login(adminEmail, adminPassword)
	ann := s.create(token, "/api/patients", map[string]any{"name": "Ann"})

	rec := s.do(http.MethodPatch, "/api/patients/"+ann, token, map[string]any{"name": "A"})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", errorOf(t, rec))
}
