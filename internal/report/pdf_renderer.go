package report

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"transaction-reports/internal/models"

	"github.com/go-pdf/fpdf"
)

var (
	ErrTemplateNotFound   = errors.New("report template not found")
	ErrDataSourceMismatch = errors.New("report table does not match template data source")
)

// Layout draws a table and its parameters onto a document
type Layout struct {
	DataSource string
	Draw       func(pdf *fpdf.Fpdf, table models.ReportTable, params models.ReportParameters) error
}

// PDFRenderer renders report tables through named layouts
type PDFRenderer struct {
	mu        sync.RWMutex
	templates map[string]Layout
	compress  bool
}

// NewPDFRenderer creates a renderer with the transaction report layout registered
func NewPDFRenderer() *PDFRenderer {
	r := &PDFRenderer{
		templates: make(map[string]Layout),
		compress:  true,
	}
	r.Register(models.TransactionReportTemplate, TransactionReportLayout())
	return r
}

// Register adds or replaces a named layout
func (r *PDFRenderer) Register(name string, layout Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[name] = layout
}

// Render produces a complete PDF document or an error, never partial output
func (r *PDFRenderer) Render(templateName string, table models.ReportTable, params models.ReportParameters) ([]byte, error) {
	r.mu.RLock()
	layout, ok := r.templates[templateName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	if layout.DataSource != "" && table.Name != layout.DataSource {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrDataSourceMismatch, layout.DataSource, table.Name)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(templateName, true)
	pdf.SetCreator("transaction-reports", true)

	if err := layout.Draw(pdf, table, params); err != nil {
		return nil, err
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to draw report: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return buf.Bytes(), nil
}
