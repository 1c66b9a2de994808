package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/verdante/import-service/internal/settings"
	"github.com/verdante/import-service/internal/types"
)

// fakeImporter records uploads and answers with a canned result or error
type fakeImporter struct {
	mu       sync.Mutex
	result   *types.ImportResult
	err      error
	filename string
	content  []byte
	last     map[types.EntityKind]types.ImportResult

	// started and release let a test hold an import open
	started chan struct{}
	release chan struct{}
}

func newFakeImporter() *fakeImporter {
	return &fakeImporter{last: make(map[types.EntityKind]types.ImportResult)}
}

func (f *fakeImporter) ImportProducts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error) {
	return f.run(types.EntityProducts, filename, content)
}

func (f *fakeImporter) ImportBlogPosts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error) {
	return f.run(types.EntityBlogPosts, filename, content)
}

func (f *fakeImporter) run(kind types.EntityKind, filename string, content []byte) (*types.ImportResult, error) {
	if f.started != nil && kind == types.EntityProducts {
		f.started <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.filename = filename
	f.content = content
	if f.err != nil {
		return nil, f.err
	}
	result := types.ImportResult{Entity: kind, Errors: []string{}}
	if f.result != nil {
		result = *f.result
		result.Entity = kind
	}
	f.last[kind] = result
	return &result, nil
}

func (f *fakeImporter) LastResult(kind types.EntityKind) (types.ImportResult, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.last[kind]
	return result, ok
}

// memorySettings keeps sections in a map
type memorySettings struct {
	sections map[settings.SectionName]settings.Section
	putErr   error
}

func (m *memorySettings) GetSettings(ctx context.Context, name settings.SectionName) (settings.Section, error) {
	if section, ok := m.sections[name]; ok {
		return section, nil
	}
	return settings.Defaults(name)
}

func (m *memorySettings) PutSettings(ctx context.Context, section settings.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}
	if m.putErr != nil {
		return m.putErr
	}
	m.sections[section.Name()] = section
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// uploadRequest builds a multipart request carrying content under the file field
func uploadRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(uploadField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
