package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pathwaycare/intake-api/internal/pdf"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer returns canned bytes per call, or an error.
type stubRenderer struct {
	output [][]byte
	err    error
	calls  int
}

func (s *stubRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.output[s.calls%len(s.output)]
	s.calls++
	return out, nil
}

func TestHTTPRendererPostsAndReturnsPDF(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	renderer := pdf.NewHTTPRenderer(server.URL, 5*time.Second)
	data, err := renderer.Render(context.Background(), "<h1>Intake</h1>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Contains(t, gotBody, `"format":"A4"`)
	assert.Contains(t, gotBody, `"printBackground":true`)
	assert.Contains(t, gotBody, `"0.5cm"`)
}

func TestHTTPRendererRejectsNonPDFResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not a pdf</html>"))
	}))
	defer server.Close()

	renderer := pdf.NewHTTPRenderer(server.URL, 5*time.Second)
	_, err := renderer.Render(context.Background(), "<h1>x</h1>")
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeRender, custom.Type)
}

func TestHTTPRendererSurfacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	renderer := pdf.NewHTTPRenderer(server.URL, 5*time.Second)
	_, err := renderer.Render(context.Background(), "<h1>x</h1>")
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeRender, custom.Type)
}

func TestHTTPRendererRejectsEmptyHTML(t *testing.T) {
	renderer := pdf.NewHTTPRenderer("http://localhost:0", time.Second)
	_, err := renderer.Render(context.Background(), "")
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeValidation, custom.Type)
}

// onePagePDF builds a structurally valid single-page PDF, computing the xref
// offsets as it writes so the document always parses.
func onePagePDF() []byte {
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> >>\nendobj\n",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		buf.WriteString(obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xref)
	return buf.Bytes()
}

func TestRenderManyMergesPageCountsInOrder(t *testing.T) {
	spool := t.TempDir()
	stub := &stubRenderer{output: [][]byte{onePagePDF()}}
	svc := pdf.NewService(stub, spool, 1)

	merged, err := svc.RenderMany(context.Background(), []string{"<p>first</p>", "<p>second</p>"})
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)

	out := filepath.Join(t.TempDir(), "merged.pdf")
	require.NoError(t, os.WriteFile(out, merged, 0o600))
	pages, err := pdf.PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 2, pages, "merged page count must equal the sum of the inputs")

	entries, err := os.ReadDir(spool)
	require.NoError(t, err)
	assert.Empty(t, entries, "successful batches must reclaim their spool")
}

func TestRenderManyRequiresInput(t *testing.T) {
	svc := pdf.NewService(&stubRenderer{}, t.TempDir(), 1)
	_, err := svc.RenderMany(context.Background(), nil)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeValidation, custom.Type)
}

func TestRenderManySingleInputSkipsSpool(t *testing.T) {
	spool := t.TempDir()
	stub := &stubRenderer{output: [][]byte{[]byte("%PDF-one")}}
	svc := pdf.NewService(stub, spool, 1)

	data, err := svc.RenderMany(context.Background(), []string{"<h1>only</h1>"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-one", string(data))

	entries, err := os.ReadDir(spool)
	require.NoError(t, err)
	assert.Empty(t, entries, "single-document renders must not spool")
}

func TestRenderManyCleansSpoolOnFailure(t *testing.T) {
	spool := t.TempDir()
	// Bytes that are not a parseable PDF force the batch to fail after the
	// first intermediate hits the spool.
	stub := &stubRenderer{output: [][]byte{[]byte("%PDF-garbage")}}
	svc := pdf.NewService(stub, spool, 1)

	_, err := svc.RenderMany(context.Background(), []string{"<p>a</p>", "<p>b</p>"})
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeRender, custom.Type)

	entries, err := os.ReadDir(spool)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed batches must leave no spool residue")
}

func TestRenderManyPropagatesRendererErrors(t *testing.T) {
	svc := pdf.NewService(&stubRenderer{err: errors.New("browser crashed")}, t.TempDir(), 1)
	_, err := svc.RenderMany(context.Background(), []string{"<p>a</p>", "<p>b</p>"})
	require.Error(t, err)
}

func TestSweeperRemovesOnlyStaleSpoolEntries(t *testing.T) {
	spool := t.TempDir()

	stale := filepath.Join(spool, "intake-pdf-stale")
	fresh := filepath.Join(spool, "intake-pdf-fresh")
	foreign := filepath.Join(spool, "unrelated-dir")
	for _, dir := range []string{stale, fresh, foreign} {
		require.NoError(t, os.Mkdir(dir, 0o700))
	}
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(foreign, old, old))

	sweeper := pdf.NewSweeper(spool, time.Hour)
	sweeper.Sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale spool entry must be removed")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh spool entry must survive")
	_, err = os.Stat(foreign)
	assert.NoError(t, err, "entries outside the spool prefix must survive")
}
