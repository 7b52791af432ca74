// Package pdf turns rendered HTML into PDF bytes, merging multi-document
// batches into a single file and cleaning up its spool of intermediates.
package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pathwaycare/intake-api/internal/types"
)

// Renderer converts one HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

type renderRequest struct {
	HTML    string        `json:"html"`
	Options renderOptions `json:"options"`
}

type renderOptions struct {
	Format          string       `json:"format"`
	PrintBackground bool         `json:"printBackground"`
	Margin          renderMargin `json:"margin"`
}

type renderMargin struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// HTTPRenderer posts HTML to an external headless-browser render service and
// returns the PDF bytes it produces. The service contract is opaque beyond
// "HTML in, PDF out".
type HTTPRenderer struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPRenderer builds a renderer against the given render service URL.
func NewHTTPRenderer(url string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

var pdfMagic = []byte("%PDF-")

// Render submits one HTML document with the fixed page setup (A4, half a
// centimeter of margin, backgrounds printed) and returns the PDF bytes.
func (r *HTTPRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, types.NewValidationError("Please provide HTML content to render")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, err := json.Marshal(renderRequest{
		HTML: html,
		Options: renderOptions{
			Format:          "A4",
			PrintBackground: true,
			Margin:          renderMargin{Top: "0.5cm", Right: "0.5cm", Bottom: "0.5cm", Left: "0.5cm"},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, types.NewRenderError("PDF render timed out")
		}
		return nil, types.NewRenderError(fmt.Sprintf("PDF render request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewRenderError(fmt.Sprintf("PDF render service returned status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewRenderError(fmt.Sprintf("reading rendered PDF failed: %v", err))
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, types.NewRenderError("PDF render service returned a non-PDF response")
	}
	return data, nil
}
