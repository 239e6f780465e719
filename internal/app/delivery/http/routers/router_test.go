package routers

import (
	"bytes"
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/app/services/core/appointments"
	"carepulse-service/internal/app/services/core/auth"
	"carepulse-service/internal/app/services/core/doctors"
	"carepulse-service/internal/app/services/core/patients"
	"carepulse-service/internal/app/services/core/users"
	"carepulse-service/internal/app/services/shared/documentstore"
	"carepulse-service/internal/app/services/shared/locker"
	"carepulse-service/internal/app/services/shared/redis"
	"carepulse-service/internal/app/services/shared/storage"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/utils"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPasskey = "123456"

type recordingNotifier struct {
	mu       sync.Mutex
	messages []requests.AppointmentNotification
}

func (n *recordingNotifier) PublishAppointmentNotification(ctx context.Context, message *requests.AppointmentNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, *message)
	return nil
}

type testServer struct {
	router      *chi.Mux
	notifier    *recordingNotifier
	objectStore *storage.MemoryObjectStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()

	hash, err := utils.HashPasskey(testPasskey)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "/api",
			CorsAllowedOrigins:         []string{"*"},
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 12,
		},
		JWT: config.AppJWT{Secret: "secret"},
		Admin: config.AppAdmin{
			PasskeyHash:                  hash,
			SessionExpiredTimeInHours:    1,
			LoginRateLimitPerMinute:      5,
			LoginRateLimitBurst:          3,
			LoginBlockDurationInMinutes:  15,
			AppointmentLockTimeInSeconds: 10,
		},
		Storage: config.AppStorage{
			BucketName:                      "documents",
			PublicEndpoint:                  "http://localhost:9000",
			ProjectID:                       "carepulse",
			IdentificationMaxUploadSizeInMB: 1,
		},
	}

	store := documentstore.NewMemoryStore(documentstore.WithUniqueField(constvars.MongoCollectionUsers, "email"))
	redisRepository := redis.NewMemoryRepository()
	objectStore := storage.NewMemoryObjectStore("documents", "http://localhost:9000", "carepulse")
	notifier := &recordingNotifier{}

	userRepository := users.NewUserRepository(store)
	patientRepository := patients.NewPatientRepository(store)
	appointmentRepository := appointments.NewAppointmentRepository(store)

	userUsecase := users.NewUserUsecase(userRepository, logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, objectStore, 1<<20, logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, locker.NewLockService(redisRepository, logger), notifier, 10*time.Second, time.UTC, logger)
	authUsecase := auth.NewAuthUsecase(redisRepository, hash, "secret", time.Hour, logger)
	doctorUsecase := doctors.NewDoctorUsecase(nil)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		logger,
		middlewares.NewMiddlewares(logger, authUsecase, internalConfig),
		controllers.NewUserController(logger, userUsecase, patientUsecase),
		controllers.NewPatientController(logger, patientUsecase, internalConfig),
		controllers.NewAppointmentController(logger, appointmentUsecase, doctorUsecase, time.UTC),
		controllers.NewDoctorController(logger, doctorUsecase),
		controllers.NewAuthController(logger, authUsecase),
		controllers.NewValidationController(logger),
	)

	return &testServer{router: router, notifier: notifier, objectStore: objectStore}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func decodeData(t *testing.T, resp envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func patientPayload(userID string) map[string]interface{} {
	return map[string]interface{}{
		"userId":                 userID,
		"name":                   "Jane Roe",
		"email":                  "jane@example.com",
		"phone":                  "+15555550100",
		"birthDate":              "1990-04-12",
		"gender":                 "female",
		"address":                "14 Harbor Street",
		"occupation":             "Engineer",
		"emergencyContactName":   "John Roe",
		"emergencyContactNumber": "+15555550101",
		"primaryPhysician":       "John Green",
		"insuranceProvider":      "Acme Health",
		"insurancePolicyNumber":  "ACM-1234",
		"treatmentConsent":       true,
		"disclosureConsent":      true,
		"privacyConsent":         true,
	}
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	s := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/admin/appointments"},
		{http.MethodPut, "/api/v1/admin/appointments/6f1c1f1e-8a43-4d0e-9d7b-1b8a2c7e5a10/schedule"},
		{http.MethodPut, "/api/v1/admin/appointments/6f1c1f1e-8a43-4d0e-9d7b-1b8a2c7e5a10/cancel"},
		{http.MethodPost, "/api/v1/admin/logout"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			code, resp := s.do(t, p.method, p.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.False(t, resp.Success)
		})
	}
}

func TestAdminLogin_RejectsWrongPasskey(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"passkey": "654321"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminLogin_IsRateLimited(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		code, _ := s.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"passkey": "654321"})
		require.Equal(t, http.StatusUnauthorized, code)
	}
	code, _ := s.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"passkey": testPasskey})
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"name":  "Jane Roe",
		"email": "jane@example.com",
		"phone": "+15555550100",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var user struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &user)

	code, resp = s.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"name":  "Jane Roe",
		"email": "jane@example.com",
		"phone": "+15555550100",
	})
	require.Equal(t, http.StatusCreated, code)
	var again struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &again)
	assert.Equal(t, user.ID, again.ID, "same email resolves to the same user")

	code, resp = s.do(t, http.MethodGet, "/api/v1/users/"+user.ID+"/patient", "", nil)
	require.Equal(t, http.StatusOK, code)
	var lookup struct {
		Found bool `json:"found"`
	}
	decodeData(t, resp, &lookup)
	assert.False(t, lookup.Found, "no patient registered yet")

	code, resp = s.do(t, http.MethodPost, "/api/v1/patients", "", patientPayload(user.ID))
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var patient struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &patient)

	code, resp = s.do(t, http.MethodPost, "/api/v1/appointments", "", map[string]string{
		"userId":           user.ID,
		"patientId":        patient.ID,
		"primaryPhysician": "Leila Cameron",
		"schedule":         "2030-03-05T09:00:00Z",
		"reason":           "Annual checkup",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var appointment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, resp, &appointment)
	assert.Equal(t, "pending", appointment.Status)

	code, resp = s.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"passkey": testPasskey})
	require.Equal(t, http.StatusOK, code, resp.Message)
	var login struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &login)

	code, resp = s.do(t, http.MethodGet, "/api/v1/admin/appointments", login.Token, nil)
	require.Equal(t, http.StatusOK, code)
	var dashboard struct {
		PendingCount int `json:"pendingCount"`
		Rows         []struct {
			ID          string `json:"id"`
			PatientName string `json:"patientName"`
			DoctorImage string `json:"doctorImage"`
		} `json:"rows"`
	}
	decodeData(t, resp, &dashboard)
	assert.Equal(t, 1, dashboard.PendingCount)
	require.Len(t, dashboard.Rows, 1)
	assert.Equal(t, "Jane Roe", dashboard.Rows[0].PatientName)
	assert.Equal(t, "/assets/images/dr-cameron.png", dashboard.Rows[0].DoctorImage)

	code, resp = s.do(t, http.MethodPut, "/api/v1/admin/appointments/"+appointment.ID+"/schedule", login.Token, map[string]string{
		"primaryPhysician": "Leila Cameron",
		"schedule":         "2030-03-05T09:00:00Z",
	})
	require.Equal(t, http.StatusOK, code, resp.Message)
	decodeData(t, resp, &appointment)
	assert.Equal(t, "scheduled", appointment.Status)

	code, resp = s.do(t, http.MethodPut, "/api/v1/admin/appointments/"+appointment.ID+"/cancel", login.Token, map[string]string{
		"primaryPhysician":   "Leila Cameron",
		"schedule":           "2030-03-05T09:00:00Z",
		"cancellationReason": "Doctor unavailable",
	})
	require.Equal(t, http.StatusOK, code, resp.Message)
	decodeData(t, resp, &appointment)
	assert.Equal(t, "cancelled", appointment.Status)

	code, _ = s.do(t, http.MethodPut, "/api/v1/admin/appointments/"+appointment.ID+"/schedule", login.Token, map[string]string{
		"primaryPhysician": "Leila Cameron",
		"schedule":         "2030-03-06T09:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, code, "cancelled is terminal")

	s.notifier.mu.Lock()
	assert.Len(t, s.notifier.messages, 2)
	s.notifier.mu.Unlock()

	code, _ = s.do(t, http.MethodPost, "/api/v1/admin/logout", login.Token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodGet, "/api/v1/admin/appointments", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterPatient_Multipart(t *testing.T) {
	s := newTestServer(t)

	data, err := json.Marshal(patientPayload("user-1"))
	require.NoError(t, err)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField(constvars.MultipartFieldData, string(data)))
	part, err := writer.CreateFormFile(constvars.MultipartFieldIdentificationDocument, "passport.png")
	require.NoError(t, err)
	_, err = part.Write(append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", &body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	code, resp := s.serve(t, req)
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var patient struct {
		IdentificationDocumentID  *string `json:"identificationDocumentId"`
		IdentificationDocumentURL *string `json:"identificationDocumentUrl"`
	}
	decodeData(t, resp, &patient)
	require.NotNil(t, patient.IdentificationDocumentID)
	require.NotNil(t, patient.IdentificationDocumentURL)
	assert.Contains(t, *patient.IdentificationDocumentURL, *patient.IdentificationDocumentID)
	assert.Equal(t, 1, s.objectStore.Len())
}

func TestValidationRoutes(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodPost, "/api/v1/validations/create-user", "", map[string]string{
		"name":  "Jane Roe",
		"email": "jane@example.com",
		"phone": "+15555550100",
	})
	require.Equal(t, http.StatusOK, code)
	var result struct {
		Kind  string `json:"kind"`
		Valid bool   `json:"valid"`
	}
	decodeData(t, resp, &result)
	assert.Equal(t, "create-user", result.Kind)
	assert.True(t, result.Valid)

	code, resp = s.do(t, http.MethodPost, "/api/v1/validations/create-user", "", map[string]string{"name": "J"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Fields, "email")

	code, _ = s.do(t, http.MethodPost, "/api/v1/validations/unknown", "", map[string]string{})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetUser_RejectsMalformedID(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(t, http.MethodGet, "/api/v1/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListDoctors(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(t, http.MethodGet, "/api/v1/doctors", "", nil)
	require.Equal(t, http.StatusOK, code)
	var doctors []struct {
		Name string `json:"name"`
	}
	decodeData(t, resp, &doctors)
	assert.Len(t, doctors, 9)
}

func TestJSONRoutes_StreamedBodyOverLimit(t *testing.T) {
	s := newTestServer(t)
	oversized := `{"name":"` + strings.Repeat("a", 13<<20) + `"}`

	for _, path := range []string{"/api/v1/users", "/api/v1/appointments", "/api/v1/validations/create-user"} {
		t.Run(path, func(t *testing.T) {
			// MultiReader hides the length, so the limit trips while reading.
			req := httptest.NewRequest(http.MethodPost, path, io.MultiReader(strings.NewReader(oversized)))
			req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			require.EqualValues(t, -1, req.ContentLength)

			code, resp := s.serve(t, req)
			assert.Equal(t, http.StatusRequestEntityTooLarge, code)
			assert.False(t, resp.Success)
		})
	}
}
