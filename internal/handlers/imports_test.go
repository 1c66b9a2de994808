package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdante/import-service/internal/parsers/wxr"
	"github.com/verdante/import-service/internal/pipeline"
	"github.com/verdante/import-service/internal/types"
)

func importRouter(h *ImportHandler) *gin.Engine {
	router := newTestRouter()
	router.POST("/import/products", h.ImportProducts)
	router.POST("/import/blogs", h.ImportBlogPosts)
	router.GET("/import/:entity/last", h.LastResult)
	return router
}

func TestImportProducts_Success(t *testing.T) {
	importer := newFakeImporter()
	importer.result = &types.ImportResult{
		RunID:   "run-1",
		Total:   3,
		Success: 2,
		Failed:  1,
		Errors:  []string{`Duplicate: "Fern": product with slug "fern" already exists`},
	}
	router := importRouter(NewImportHandler(importer, 0))

	content := []byte("name,price\nFern,12\nPalm,30\nFern,12\n")
	w := serve(router, uploadRequest(t, "/import/products", "catalog.csv", content))

	require.Equal(t, http.StatusOK, w.Code)
	var result types.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, types.EntityProducts, result.Entity)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Errors, 1)

	assert.Equal(t, "catalog.csv", importer.filename)
	assert.Equal(t, content, importer.content)
}

func TestImport_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"no records", "/import/products", pipeline.ErrNoRecords, http.StatusUnprocessableEntity},
		{"wrapped no records", "/import/blogs", fmt.Errorf("parse: %w", pipeline.ErrNoRecords), http.StatusUnprocessableEntity},
		{"unsupported format", "/import/products", pipeline.ErrUnsupportedFormat, http.StatusBadRequest},
		{"invalid document", "/import/blogs", wxr.ErrInvalidDocument, http.StatusBadRequest},
		{"other parse failure", "/import/products", errors.New("boom"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importer := newFakeImporter()
			importer.err = tt.err
			router := importRouter(NewImportHandler(importer, 0))

			w := serve(router, uploadRequest(t, tt.target, "upload.bin", []byte("x")))

			assert.Equal(t, tt.want, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestImport_MissingFile(t *testing.T) {
	router := importRouter(NewImportHandler(newFakeImporter(), 0))

	req := httptest.NewRequest(http.MethodPost, "/import/products", strings.NewReader("name,price\n"))
	req.Header.Set("Content-Type", "text/csv")
	w := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `\"file\"`)
}

func TestImport_TooLarge(t *testing.T) {
	importer := newFakeImporter()
	router := importRouter(NewImportHandler(importer, 16))

	w := serve(router, uploadRequest(t, "/import/products", "big.csv", []byte(strings.Repeat("a", 64))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Nil(t, importer.content, "oversized uploads never reach the importer")
}

func TestImport_BusyPerEntity(t *testing.T) {
	importer := newFakeImporter()
	importer.started = make(chan struct{})
	importer.release = make(chan struct{})
	router := importRouter(NewImportHandler(importer, 0))

	firstReq := uploadRequest(t, "/import/products", "a.csv", []byte("name\nFern\n"))
	var wg sync.WaitGroup
	var first *httptest.ResponseRecorder
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = serve(router, firstReq)
	}()
	<-importer.started

	second := serve(router, uploadRequest(t, "/import/products", "b.csv", []byte("name\nPalm\n")))
	assert.Equal(t, http.StatusConflict, second.Code)

	blogs := serve(router, uploadRequest(t, "/import/blogs", "export.xml", []byte("<rss/>")))
	assert.Equal(t, http.StatusOK, blogs.Code, "a running product import does not block blog imports")

	close(importer.release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)

	importer.started = nil
	third := serve(router, uploadRequest(t, "/import/products", "c.csv", []byte("name\nMoss\n")))
	assert.Equal(t, http.StatusOK, third.Code, "the busy flag clears when the run finishes")
}

func TestLastResult(t *testing.T) {
	importer := newFakeImporter()
	router := importRouter(NewImportHandler(importer, 0))

	w := serve(router, httptest.NewRequest(http.MethodGet, "/import/products/last", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/import/widgets/last", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	importer.result = &types.ImportResult{RunID: "run-9", Total: 1, Success: 1, Errors: []string{}}
	w = serve(router, uploadRequest(t, "/import/blogs", "export.xml", []byte("<rss/>")))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/import/blogs/last", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var result types.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "run-9", result.RunID)
	assert.Equal(t, types.EntityBlogPosts, result.Entity)
}
