// Package render produces certificate PDFs in memory with gofpdf.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"traincert/certificate-backend/internal/certificates"
	"traincert/certificate-backend/internal/config"
)

// US Letter in points.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
)

// Text baselines on the certificate page. The layout was authored with a
// bottom-left origin, so each y is mapped through pageHeight at draw time.
const (
	fieldX    = 209.0
	tokenY    = 455.0
	nameY     = 407.0
	trainingY = 350.0
	durationY = 290.0
	dateY     = 230.0
)

const (
	tokenFontSize = 16.0
	fieldFontSize = 18.0
)

// Renderer draws certificate pages onto a blank US Letter canvas. Fonts are
// read once at construction; each Render call builds a fresh document.
type Renderer struct {
	regular  []byte
	medium   []byte
	fontName string
	// Pinned so identical input yields identical bytes; gofpdf would
	// otherwise embed the wall clock in the document metadata.
	creationDate time.Time
}

// New creates a Renderer from the configured assets. Missing font or template
// files are an error here so the caller can abort startup. An empty FontDir
// selects the built-in Helvetica core font, which needs no asset files.
func New(cfg config.AssetsConfig) (*Renderer, error) {
	r := &Renderer{
		fontName:     "Helvetica",
		creationDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	if cfg.TemplatePath != "" {
		if _, err := os.Stat(cfg.TemplatePath); err != nil {
			return nil, fmt.Errorf("certificate template unavailable: %w", err)
		}
	}

	if cfg.FontDir == "" {
		return r, nil
	}

	regular, err := os.ReadFile(filepath.Join(cfg.FontDir, "Poppins-Regular.ttf"))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	medium, err := os.ReadFile(filepath.Join(cfg.FontDir, "Poppins-Medium.ttf"))
	if err != nil {
		return nil, fmt.Errorf("failed to load medium font: %w", err)
	}

	r.regular = regular
	r.medium = medium
	r.fontName = "Poppins-Medium"
	return r, nil
}

// Render draws the token and the four request fields at their fixed baselines
// and returns the complete single-page PDF.
func (r *Renderer) Render(token string, req *certificates.CertificateRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(r.creationDate)

	if r.medium != nil {
		pdf.AddUTF8FontFromBytes("Poppins-Regular", "", r.regular)
		pdf.AddUTF8FontFromBytes("Poppins-Medium", "", r.medium)
	}

	pdf.AddPage()

	pdf.SetFont(r.fontName, "", tokenFontSize)
	pdf.Text(fieldX, pageHeight-tokenY, token)

	pdf.SetFont(r.fontName, "", fieldFontSize)
	pdf.Text(fieldX, pageHeight-nameY, req.Name)
	pdf.Text(fieldX, pageHeight-trainingY, req.TrainingName)
	pdf.Text(fieldX, pageHeight-durationY, req.TrainingDuration)
	pdf.Text(fieldX, pageHeight-dateY, req.TrainingDate)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}
