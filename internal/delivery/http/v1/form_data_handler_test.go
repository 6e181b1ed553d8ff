package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"form-data-backend/config"
	v1 "form-data-backend/internal/delivery/http/v1"
	"form-data-backend/internal/domain"
	"form-data-backend/internal/usecase"
	"form-data-backend/pkg/apperror"
	"form-data-backend/pkg/logger"
	"form-data-backend/pkg/security"
	"form-data-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Mock Usecase
type MockFormDataUsecase struct {
	mock.Mock
}

func (m *MockFormDataUsecase) CreateFormData(ctx context.Context, input *domain.FormData) (*domain.FormDataResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormDataResponse), args.Error(1)
}

func (m *MockFormDataUsecase) GetFormData(ctx context.Context, id string) (*domain.FormDataResponse, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FormDataResponse), args.Bool(1), args.Error(2)
}

func (m *MockFormDataUsecase) GetAllFormData(ctx context.Context) ([]domain.FormDataResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormDataResponse), args.Error(1)
}

func (m *MockFormDataUsecase) SearchFormData(ctx context.Context, filter domain.SearchFilter) ([]domain.FormDataResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormDataResponse), args.Error(1)
}

func (m *MockFormDataUsecase) UpdateFormData(ctx context.Context, id string, input *domain.FormData) (*domain.FormDataResponse, bool, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FormDataResponse), args.Bool(1), args.Error(2)
}

func (m *MockFormDataUsecase) DeleteFormData(ctx context.Context, id string) (*domain.FormDataResponse, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FormDataResponse), args.Bool(1), args.Error(2)
}

func (m *MockFormDataUsecase) GetStorageInfo(ctx context.Context) (*domain.StorageInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorageInfo), args.Error(1)
}

func (m *MockFormDataUsecase) ExportFormData(ctx context.Context, req domain.ExportRequest) ([]byte, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type stubHealth struct {
	healthy bool
}

func (s stubHealth) Check(ctx context.Context) (map[string]string, bool) {
	if s.healthy {
		return map[string]string{"status": "healthy", "database": "up"}, true
	}
	return map[string]string{"status": "unhealthy", "database": "down"}, false
}

type testServer struct {
	router *gin.Engine
	events *observer.ObservedLogs
	logs   *bytes.Buffer
}

func newServer(uc domain.FormDataUsecase, health domain.HealthUsecase) *testServer {
	core, events := observer.New(zapcore.DebugLevel)
	var logs bytes.Buffer

	router := v1.NewRouter(v1.RouterDeps{
		FormDataUC: uc,
		HealthUC:   health,
		Logger:     logger.NewWithWriter(&logs, "debug"),
		Events:     security.NewSecurityLoggerWithZap(zap.New(core), "form-data-api", "test"),
		Config: &config.Config{
			AppEnv:      "test",
			APITitle:    "Form Data API",
			APIVersion:  "1.0.0",
			CORSOrigins: []string{"*"},
		},
	})
	return &testServer{router: router, events: events, logs: &logs}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"first_name":     "John",
		"last_name":      "Doe",
		"email":          "john@example.com",
		"mobile_number":  "0123456789",
		"date_of_birth":  "1990-01-01",
		"street_address": "1 Main St",
		"city":           "Springfield",
		"state":          "IL",
		"postal_code":    "62701",
		"country":        "USA",
		"title":          "Mr",
		"job":            "Acme",
		"educations": []map[string]interface{}{
			{"university_name": "State University", "degree_type": "Bachelor's Degree", "course_name": "CS"},
		},
		"languages": []map[string]interface{}{
			{"name": "English", "proficiency": "Native"},
		},
	}
}

func TestCreateFormData(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		id := uuid.NewString()
		uc.On("CreateFormData", mock.Anything, mock.MatchedBy(func(in *domain.FormData) bool {
			return in.FirstName == "John" && len(in.Educations) == 1
		})).Return(&domain.FormDataResponse{ID: id}, nil)

		w, body := newServer(uc, stubHealth{true}).do(t, http.MethodPost, "/api/v1/form-data/", validPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Form data created", body["message"])
		assert.Nil(t, body["error"])
		assert.NotEmpty(t, body["timestamp"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, map[string]interface{}{"id": id}, body["data"])
		uc.AssertExpectations(t)
	})

	t.Run("Markup is rejected", func(t *testing.T) {
		repo := newMemoryRepo()
		srv := newServer(usecase.NewFormDataUsecase(repo, validation.New()), stubHealth{true})

		payload := validPayload()
		payload["first_name"] = "<b>John</b>"
		w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", payload)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		fields := body["errors"].(map[string]interface{})["fields"].([]interface{})
		require.Len(t, fields, 1)
		assert.Contains(t, fields[0], "first_name")
		assert.Equal(t, 0, repo.len())
	})

	t.Run("Free text is stored exactly as sent", func(t *testing.T) {
		repo := newMemoryRepo()
		srv := newServer(usecase.NewFormDataUsecase(repo, validation.New()), stubHealth{true})

		payload := validPayload()
		payload["first_name"] = "  John "
		payload["developer"] = "Generics: a < b && c > d"
		payload["hobbies"] = "R&D, O'Brien's \"club\""
		w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		id := body["data"].(map[string]interface{})["id"].(string)
		w, body = srv.do(t, http.MethodGet, "/api/v1/form-data/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "  John ", data["first_name"])
		assert.Equal(t, "Generics: a < b && c > d", data["developer"])
		assert.Equal(t, "R&D, O'Brien's \"club\"", data["hobbies"])
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		w, body := newServer(uc, stubHealth{true}).do(t, http.MethodPost, "/api/v1/form-data/", `{"first_name": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", body["error"])
		uc.AssertNotCalled(t, "CreateFormData", mock.Anything, mock.Anything)
	})

	t.Run("Invalid enum is rejected with field detail", func(t *testing.T) {
		repo := newMemoryRepo()
		srv := newServer(usecase.NewFormDataUsecase(repo, validation.New()), stubHealth{true})

		payload := validPayload()
		payload["title"] = "InvalidTitle"
		w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", payload)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "VALIDATION_ERROR", body["error"])
		fields := body["errors"].(map[string]interface{})["fields"].([]interface{})
		require.Len(t, fields, 1)
		assert.Contains(t, fields[0], "title")

		assert.Equal(t, 0, repo.len())
		assert.Equal(t, 1, srv.events.FilterMessage("validation_failed").Len())
	})

	t.Run("Store failure is hidden", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		uc.On("CreateFormData", mock.Anything, mock.Anything).
			Return(nil, errors.New("failed to create form data: error creating form data: connection reset"))

		srv := newServer(uc, stubHealth{true})
		w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", validPayload())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", body["error"])
		assert.NotContains(t, w.Body.String(), "connection reset")
		assert.Contains(t, srv.logs.String(), "connection reset")
	})

	t.Run("Wrapped store failure keeps the cause in the log", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		uc.On("CreateFormData", mock.Anything, mock.Anything).
			Return(nil, apperror.Internal(errors.New("error creating form data: connection reset")))

		srv := newServer(uc, stubHealth{true})
		w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", validPayload())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", body["error"])
		assert.NotContains(t, w.Body.String(), "connection reset")
		assert.Contains(t, srv.logs.String(), "connection reset")
	})
}

func TestGetFormData(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		id := uuid.NewString()
		uc.On("GetFormData", mock.Anything, id).Return(&domain.FormDataResponse{ID: id, FirstName: "John"}, true, nil)

		w, body := newServer(uc, stubHealth{true}).do(t, http.MethodGet, "/api/v1/form-data/"+id, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Fetch successful", body["message"])
		assert.Equal(t, "John", body["data"].(map[string]interface{})["first_name"])
	})

	t.Run("Malformed id is not found and logged", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		uc.On("GetFormData", mock.Anything, "not-a-valid-uuid").Return(nil, false, nil)

		srv := newServer(uc, stubHealth{true})
		w, body := srv.do(t, http.MethodGet, "/api/v1/form-data/not-a-valid-uuid", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", body["error"])
		assert.Equal(t, "Not found", body["message"])
		assert.Nil(t, body["data"])
		assert.Equal(t, "Form data with ID not-a-valid-uuid not found",
			body["errors"].(map[string]interface{})["id"])
		assert.Equal(t, 1, srv.events.FilterMessage("malformed_identifier").Len())
	})

	t.Run("Unknown id is not found without a security event", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		id := uuid.NewString()
		uc.On("GetFormData", mock.Anything, id).Return(nil, false, nil)

		srv := newServer(uc, stubHealth{true})
		w, _ := srv.do(t, http.MethodGet, "/api/v1/form-data/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 0, srv.events.Len())
	})
}

func TestGetAllFormData(t *testing.T) {
	uc := new(MockFormDataUsecase)
	uc.On("GetAllFormData", mock.Anything).Return([]domain.FormDataResponse{}, nil)

	w, body := newServer(uc, stubHealth{true}).do(t, http.MethodGet, "/api/v1/form-data/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, "Fetch all successful", body["message"])
}

func TestSearchFormData(t *testing.T) {
	uc := new(MockFormDataUsecase)
	uc.On("SearchFormData", mock.Anything, domain.SearchFilter{FirstName: "John", JobTitle: "Acme"}).
		Return([]domain.FormDataResponse{{FirstName: "John"}}, nil)

	w, body := newServer(uc, stubHealth{true}).do(t, http.MethodGet, "/api/v1/form-data/search?first_name=John&job_title=Acme", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Search successful", body["message"])
	assert.Len(t, body["data"], 1)
	uc.AssertExpectations(t)
}

func TestUpdateFormData(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		id := uuid.NewString()
		uc.On("UpdateFormData", mock.Anything, id, mock.Anything).Return(nil, false, nil)

		w, body := newServer(uc, stubHealth{true}).do(t, http.MethodPut, "/api/v1/form-data/"+id, validPayload())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", body["error"])
	})

	t.Run("Success", func(t *testing.T) {
		uc := new(MockFormDataUsecase)
		id := uuid.NewString()
		uc.On("UpdateFormData", mock.Anything, id, mock.Anything).Return(&domain.FormDataResponse{ID: id}, true, nil)

		w, body := newServer(uc, stubHealth{true}).do(t, http.MethodPut, "/api/v1/form-data/"+id, validPayload())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Update successful", body["message"])
	})
}

func TestDeleteFormData(t *testing.T) {
	uc := new(MockFormDataUsecase)
	id := uuid.NewString()
	uc.On("DeleteFormData", mock.Anything, id).Return(&domain.FormDataResponse{ID: id, FirstName: "John"}, true, nil).Once()
	uc.On("DeleteFormData", mock.Anything, id).Return(nil, false, nil).Once()

	srv := newServer(uc, stubHealth{true})

	w, body := srv.do(t, http.MethodDelete, "/api/v1/form-data/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Delete successful", body["message"])
	assert.Equal(t, "John", body["data"].(map[string]interface{})["first_name"])

	w, _ = srv.do(t, http.MethodDelete, "/api/v1/form-data/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStorageInfo(t *testing.T) {
	uc := new(MockFormDataUsecase)
	uc.On("GetStorageInfo", mock.Anything).Return(&domain.StorageInfo{
		TotalEntries:   2,
		StorageType:    "database",
		DatabaseEngine: "postgresql",
		Collections:    map[string]int64{"skills": 4},
	}, nil)

	w, body := newServer(uc, stubHealth{true}).do(t, http.MethodGet, "/api/v1/form-data/storage/info", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_entries"])
	assert.Equal(t, "database", data["storage_type"])
	assert.Equal(t, "postgresql", data["database_engine"])
}

func TestExportFormData(t *testing.T) {
	uc := new(MockFormDataUsecase)
	uc.On("ExportFormData", mock.Anything, domain.ExportRequest{
		Filter: domain.SearchFilter{LastName: "Doe"},
		Format: "csv",
	}).Return([]byte("ID,FIRST NAME\n"), "form_data_20240101_120000.csv", nil)

	w, _ := newServer(uc, stubHealth{true}).do(t, http.MethodGet, "/api/v1/form-data/export?format=csv&last_name=Doe", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "form_data_20240101_120000.csv")
	assert.Equal(t, "ID,FIRST NAME\n", w.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	t.Run("Banner", func(t *testing.T) {
		w, body := newServer(new(MockFormDataUsecase), stubHealth{true}).do(t, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Form Data API", body["data"].(map[string]interface{})["title"])
	})

	t.Run("Healthy", func(t *testing.T) {
		w, body := newServer(new(MockFormDataUsecase), stubHealth{true}).do(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", body["data"].(map[string]interface{})["status"])
	})

	t.Run("Unhealthy", func(t *testing.T) {
		w, body := newServer(new(MockFormDataUsecase), stubHealth{false}).do(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "down", body["errors"].(map[string]interface{})["database"])
	})

	t.Run("Unknown route", func(t *testing.T) {
		w, body := newServer(new(MockFormDataUsecase), stubHealth{true}).do(t, http.MethodGet, "/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", body["error"])
	})
}

// TestCreateGetUpdateFlow posts a profile with one education and one language,
// reads it back, then clears the educations with a full update.
func TestCreateGetUpdateFlow(t *testing.T) {
	srv := newServer(usecase.NewFormDataUsecase(newMemoryRepo(), validation.New()), stubHealth{true})

	w, body := srv.do(t, http.MethodPost, "/api/v1/form-data/", validPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]interface{})["id"].(string)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	w, body = srv.do(t, http.MethodGet, "/api/v1/form-data/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["educations"], 1)
	assert.Len(t, data["languages"], 1)
	assert.Equal(t, "Bachelor's Degree", data["educations"].([]interface{})[0].(map[string]interface{})["degree_type"])

	payload := validPayload()
	payload["educations"] = []interface{}{}
	w, _ = srv.do(t, http.MethodPut, "/api/v1/form-data/"+id, payload)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = srv.do(t, http.MethodGet, "/api/v1/form-data/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]interface{})
	assert.Len(t, data["educations"], 0)
	assert.Len(t, data["languages"], 1)
}

// memoryRepo is an in-process FormDataRepository for exercising the HTTP flow
// without PostgreSQL.
type memoryRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]domain.FormDataRecord
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[uuid.UUID]domain.FormDataRecord)}
}

func (r *memoryRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func toRecord(id uuid.UUID, in *domain.FormData, created time.Time) domain.FormDataRecord {
	rec := domain.FormDataRecord{
		ID:                id,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Developer:         in.Developer,
		Job:               in.Job,
		Hobbies:           in.Hobbies,
		Title:             in.Title.Canonical(),
		MaritalStatus:     in.MaritalStatus.Canonical(),
		PreferredWorkType: in.PreferredWorkType.Canonical(),
		CreatedAt:         created,
		UpdatedAt:         time.Now(),
	}
	for _, e := range in.Educations {
		rec.Educations = append(rec.Educations, domain.EducationRecord{
			ID: uuid.New(), FormDataID: id, UniversityName: e.UniversityName,
			DegreeType: e.DegreeType.Canonical(), CourseName: e.CourseName,
		})
	}
	for _, l := range in.Languages {
		rec.Languages = append(rec.Languages, domain.LanguageRecord{
			ID: uuid.New(), FormDataID: id, Name: l.Name, Proficiency: l.Proficiency.Canonical(),
		})
	}
	return rec
}

func (r *memoryRepo) Create(ctx context.Context, in *domain.FormData) (*domain.FormDataRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := toRecord(uuid.New(), in, time.Now())
	r.records[rec.ID] = rec
	return &rec, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[uid]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (r *memoryRepo) GetAll(ctx context.Context) ([]domain.FormDataRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.FormDataRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memoryRepo) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FormDataRecord, error) {
	return r.GetAll(ctx)
}

func (r *memoryRepo) Update(ctx context.Context, id string, in *domain.FormData) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.records[uid]
	if !ok {
		return nil, false, nil
	}
	rec := toRecord(uid, in, old.CreatedAt)
	r.records[uid] = rec
	return &rec, true, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) (*domain.FormDataRecord, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[uid]
	if !ok {
		return nil, false, nil
	}
	delete(r.records, uid)
	return &rec, true, nil
}

func (r *memoryRepo) Count(ctx context.Context) (*domain.StorageCounts, error) {
	return &domain.StorageCounts{FormData: int64(r.len()), Collections: map[string]int64{}}, nil
}
