package certificates

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no certificate matches the requested identifier.
var ErrNotFound = errors.New("certificate not found")

// CertificateRequest carries the four fields stamped onto a certificate.
// Values are stored verbatim; duration and date are free text by design.
type CertificateRequest struct {
	Name             string `json:"name"`
	TrainingName     string `json:"training_name"`
	TrainingDuration string `json:"training_duration"`
	TrainingDate     string `json:"training_date"`
}

// Certificate is an issued certificate row. Rows are written once at issuance
// and never updated or deleted.
type Certificate struct {
	ID               int64     `db:"id" json:"id"`
	Token            string    `db:"token" json:"token"`
	Name             string    `db:"name" json:"name"`
	TrainingName     string    `db:"training_name" json:"training_name"`
	TrainingDuration string    `db:"training_duration" json:"training_duration"`
	TrainingDate     string    `db:"training_date" json:"training_date"`
	PDFData          []byte    `db:"pdf_data" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// StoredCertificate is the fetch-path projection: just enough to serve the
// download (attachment filename plus the rendered bytes).
type StoredCertificate struct {
	Name    string `db:"name"`
	PDFData []byte `db:"pdf_data"`
}

// CreateResult is returned by the create pipeline once the row is committed.
type CreateResult struct {
	CertificateID int64  `json:"certificate_id"`
	Token         string `json:"token"`
}
