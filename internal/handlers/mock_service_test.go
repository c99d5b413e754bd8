package handlers

import (
	"context"
	"net/http"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMeasurements struct {
	recorded  models.Measurement
	recordErr error
	list      []models.Measurement
	listErr   error
	deleteErr error

	lastUserID int
	lastNew    service.NewMeasurement
	lastFilter service.MeasurementFilter
	lastDelete string
}

func (m *mockMeasurements) Record(_ context.Context, userID int, in service.NewMeasurement) (models.Measurement, error) {
	m.lastUserID = userID
	m.lastNew = in
	return m.recorded, m.recordErr
}
func (m *mockMeasurements) List(_ context.Context, userID int, f service.MeasurementFilter) ([]models.Measurement, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.list, m.listErr
}
func (m *mockMeasurements) Delete(_ context.Context, userID int, id string) error {
	m.lastUserID = userID
	m.lastDelete = id
	return m.deleteErr
}

type mockAnalysis struct {
	report     service.Report
	analyzeErr error
	image      []byte
	imageErr   error

	calls      int
	lastUserID int
	lastQuery  analysis.Query
}

func (m *mockAnalysis) Analyze(_ context.Context, userID int, q analysis.Query) (service.Report, error) {
	m.calls++
	m.lastUserID = userID
	m.lastQuery = q
	return m.report, m.analyzeErr
}
func (m *mockAnalysis) Histogram(_ context.Context, userID int, q analysis.Query) ([]byte, error) {
	m.calls++
	m.lastUserID = userID
	m.lastQuery = q
	return m.image, m.imageErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
