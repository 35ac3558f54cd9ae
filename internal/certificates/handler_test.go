package certificates

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func setupRouter(repo Repository, renderer Renderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := NewService(repo, renderer, zap.NewNop())
	handler := NewHandler(service, zap.NewNop())
	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func TestGenerateCertificateEndpoint(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	router := setupRouter(mockRepo, mockRenderer)

	mockRenderer.On("Render", mock.AnythingOfType("string"), mock.AnythingOfType("*certificates.CertificateRequest")).
		Return([]byte("%PDF-1.3"), nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*certificates.Certificate")).
		Return(int64(42), nil)

	body := `{
		"name": "Ada Lovelace",
		"training_name": "Intro to Systems",
		"training_duration": "40 hours",
		"training_date": "2024-01-15"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_certificate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message       string `json:"message"`
		CertificateID int64  `json:"certificate_id"`
		Token         string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Certificate generated successfully!", resp.Message)
	assert.Equal(t, int64(42), resp.CertificateID)
	assert.Len(t, resp.Token, TokenLength)

	mockRepo.AssertExpectations(t)
	mockRenderer.AssertExpectations(t)
}

func TestGenerateCertificateMissingField(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	router := setupRouter(mockRepo, mockRenderer)

	// training_date is absent
	body := `{
		"name": "Ada Lovelace",
		"training_name": "Intro to Systems",
		"training_duration": "40 hours"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_certificate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRenderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGenerateCertificateEmptyFieldAccepted(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	router := setupRouter(mockRepo, mockRenderer)

	mockRenderer.On("Render", mock.AnythingOfType("string"), mock.AnythingOfType("*certificates.CertificateRequest")).
		Return([]byte("%PDF-1.3"), nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*certificates.Certificate")).
		Return(int64(1), nil)

	// Present-but-empty values pass validation verbatim
	body := `{
		"name": "",
		"training_name": "Intro to Systems",
		"training_duration": "",
		"training_date": "2024-01-15"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_certificate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateCertificateInsertFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRenderer := new(MockRenderer)
	router := setupRouter(mockRepo, mockRenderer)

	mockRenderer.On("Render", mock.AnythingOfType("string"), mock.AnythingOfType("*certificates.CertificateRequest")).
		Return([]byte("%PDF-1.3"), nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*certificates.Certificate")).
		Return(int64(0), assert.AnError)

	body := `{"name":"a","training_name":"b","training_duration":"c","training_date":"d"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_certificate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetCertificateEndpoint(t *testing.T) {
	mockRepo := new(MockRepository)
	router := setupRouter(mockRepo, new(MockRenderer))

	pdfBytes := []byte("%PDF-1.3 certificate body")
	mockRepo.On("Fetch", mock.Anything, int64(42)).
		Return(&StoredCertificate{Name: "Ada Lovelace", PDFData: pdfBytes}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/certificate/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Ada Lovelace.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, pdfBytes, w.Body.Bytes())
}

func TestGetCertificateNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	router := setupRouter(mockRepo, new(MockRenderer))

	mockRepo.On("Fetch", mock.Anything, int64(999999)).Return(nil, ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/certificate/999999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEqual(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestGetCertificateInvalidID(t *testing.T) {
	mockRepo := new(MockRepository)
	router := setupRouter(mockRepo, new(MockRenderer))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/certificate/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestGetCertificateStoreFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	router := setupRouter(mockRepo, new(MockRenderer))

	mockRepo.On("Fetch", mock.Anything, int64(5)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/certificate/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
