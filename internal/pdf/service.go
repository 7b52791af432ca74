package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// spoolPrefix marks the temp directories this package owns, so the sweeper
// never touches anything else under the spool root.
const spoolPrefix = "intake-pdf-"

// Service renders single documents and merged batches. Batches spool their
// intermediate PDFs to disk and reclaim them before returning, success or
// failure; the semaphore caps how many batches render at once.
type Service struct {
	renderer Renderer
	spoolDir string
	sem      chan struct{}
}

// NewService wires a Service over the given renderer. concurrency bounds the
// number of simultaneous batch merges.
func NewService(renderer Renderer, spoolDir string, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		renderer: renderer,
		spoolDir: spoolDir,
		sem:      make(chan struct{}, concurrency),
	}
}

// RenderOne renders a single HTML document to PDF bytes.
func (s *Service) RenderOne(ctx context.Context, html string) ([]byte, error) {
	return s.renderer.Render(ctx, html)
}

// RenderMany renders each HTML input, then merges the intermediates in input
// order into one PDF preserving every page.
func (s *Service) RenderMany(ctx context.Context, htmlDocuments []string) ([]byte, error) {
	if len(htmlDocuments) == 0 {
		return nil, types.NewValidationError("Please provide an array of HTML documents to render")
	}
	if len(htmlDocuments) == 1 {
		return s.RenderOne(ctx, htmlDocuments[0])
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return nil, types.NewRenderError("PDF render timed out")
	}

	workDir, err := os.MkdirTemp(s.spoolDir, spoolPrefix)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	parts := make([]string, 0, len(htmlDocuments))
	for i, html := range htmlDocuments {
		data, err := s.renderer.Render(ctx, html)
		if err != nil {
			return nil, err
		}
		part := filepath.Join(workDir, fmt.Sprintf("part-%03d.pdf", i))
		if err := os.WriteFile(part, data, 0o600); err != nil {
			return nil, err
		}
		if _, err := PageCount(part); err != nil {
			return nil, types.NewRenderError(fmt.Sprintf("rendered document %d is not a readable PDF", i))
		}
		parts = append(parts, part)
	}

	merged := filepath.Join(workDir, "merged.pdf")
	if err := api.MergeCreateFile(parts, merged, false, nil); err != nil {
		return nil, types.NewRenderError(fmt.Sprintf("merging rendered PDFs failed: %v", err))
	}
	return os.ReadFile(merged)
}

// PageCount reads the page count of a PDF file on disk.
func PageCount(path string) (int, error) {
	f, reader, err := ltpdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return reader.NumPage(), nil
}
