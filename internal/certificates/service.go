package certificates

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Renderer produces the certificate PDF for a token and its request fields.
type Renderer interface {
	Render(token string, req *CertificateRequest) ([]byte, error)
}

// Service provides business logic for certificate issuance and retrieval
type Service struct {
	repo     Repository
	renderer Renderer
	logger   *zap.Logger
}

// NewService creates a new certificates service
func NewService(repo Repository, renderer Renderer, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

// Create issues a certificate: generate a token, render the PDF, persist the
// row. The insert is the only durable write, so a render or store failure
// leaves no record behind.
func (s *Service) Create(ctx context.Context, req *CertificateRequest) (*CreateResult, error) {
	token := GenerateToken()

	pdfBytes, err := s.renderer.Render(token, req)
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	cert := &Certificate{
		Token:            token,
		Name:             req.Name,
		TrainingName:     req.TrainingName,
		TrainingDuration: req.TrainingDuration,
		TrainingDate:     req.TrainingDate,
		PDFData:          pdfBytes,
	}

	id, err := s.repo.Insert(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("failed to save certificate: %w", err)
	}

	s.logger.Info("Certificate issued",
		zap.Int64("certificate_id", id),
		zap.Int("pdf_size_bytes", len(pdfBytes)),
	)

	return &CreateResult{CertificateID: id, Token: token}, nil
}

// Get returns the stored certificate for an identifier. ErrNotFound passes
// through untouched so the handler can answer 404.
func (s *Service) Get(ctx context.Context, id int64) (*StoredCertificate, error) {
	return s.repo.Fetch(ctx, id)
}
