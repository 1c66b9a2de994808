package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdante/import-service/internal/settings"
)

func settingsRouter(store SettingsStore) *gin.Engine {
	h := NewSettingsHandler(store)
	router := newTestRouter()
	router.GET("/settings/:section", h.Get)
	router.PUT("/settings/:section", h.Put)
	return router
}

func TestSettingsGet(t *testing.T) {
	store := &memorySettings{sections: map[settings.SectionName]settings.Section{}}
	router := settingsRouter(store)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/settings/payments", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/settings/store", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var got settings.StoreSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "SAR", got.Currency)
}

func TestSettingsPut(t *testing.T) {
	tests := []struct {
		name    string
		section string
		body    string
		putErr  error
		want    int
	}{
		{"valid store", "store", `{"storeName":"Verdante","currency":"AED","defaultLocale":"ar"}`, nil, http.StatusOK},
		{"valid shipping", "shipping", `{"flatRate":15,"freeShippingThreshold":200,"estimatedDaysMin":1,"estimatedDaysMax":3}`, nil, http.StatusOK},
		{"invalid currency", "store", `{"storeName":"Verdante","currency":"riyal"}`, nil, http.StatusBadRequest},
		{"unknown field", "seo", `{"metaTitle":"Plants","colour":"green"}`, nil, http.StatusBadRequest},
		{"malformed json", "social", `{"instagram":`, nil, http.StatusBadRequest},
		{"unknown section", "payments", `{}`, nil, http.StatusNotFound},
		{"store failure", "store", `{"storeName":"Verdante","currency":"SAR"}`, errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memorySettings{sections: map[settings.SectionName]settings.Section{}, putErr: tt.putErr}
			router := settingsRouter(store)

			req := httptest.NewRequest(http.MethodPut, "/settings/"+tt.section, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(router, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusOK {
				assert.Contains(t, store.sections, settings.SectionName(tt.section))
			} else {
				assert.Empty(t, store.sections)
			}
		})
	}
}
