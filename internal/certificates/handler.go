package certificates

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for certificate operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new certificates handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers certificate routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/generate_certificate", h.generateCertificate)
	router.GET("/certificate/:certificate_id", h.getCertificate)
}

// generateRequest is the wire form of a create request. Fields are pointers so
// that an absent field fails binding while an explicit empty string passes.
type generateRequest struct {
	Name             *string `json:"name" binding:"required"`
	TrainingName     *string `json:"training_name" binding:"required"`
	TrainingDuration *string `json:"training_duration" binding:"required"`
	TrainingDate     *string `json:"training_date" binding:"required"`
}

// generateCertificate handles POST /generate_certificate
func (h *Handler) generateCertificate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), &CertificateRequest{
		Name:             *req.Name,
		TrainingName:     *req.TrainingName,
		TrainingDuration: *req.TrainingDuration,
		TrainingDate:     *req.TrainingDate,
	})
	if err != nil {
		h.logger.Error("Failed to generate certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Certificate generated successfully!",
		"certificate_id": result.CertificateID,
		"token":          result.Token,
	})
}

// getCertificate handles GET /certificate/:certificate_id
func (h *Handler) getCertificate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("certificate_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "certificate_id must be an integer"})
		return
	}

	cert, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found."})
			return
		}
		h.logger.Error("Failed to fetch certificate", zap.Int64("certificate_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", cert.Name))
	c.Data(http.StatusOK, "application/pdf", cert.PDFData)
}
