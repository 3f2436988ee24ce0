package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingController struct{}

func (pingController) Routes(r gin.IRouter) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func TestSetupApiRoutes(t *testing.T) {
	r := gin.New()
	SetupApiRoutes(r, pingController{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestCatalogControllers_NotInitialized(t *testing.T) {
	_, err := catalogControllers()
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/health", health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"object":"health","status":"ok"}`, w.Body.String())
}

func TestSetupRouter_InvalidEnv(t *testing.T) {
	viper.Set("app.env", "staging")
	t.Cleanup(func() { viper.Set("app.env", "") })

	_, err := SetupRouter(nil)
	assert.Error(t, err)
}

func TestRegisterDocs(t *testing.T) {
	r := gin.New()
	registerDocs(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doc/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Subspace Catalog API", doc.Info.Title)
	for _, path := range []string{"/api/tenant/create", "/api/brand", "/api/solution/schema", "/api/solution/list"} {
		assert.Contains(t, doc.Paths, path)
	}
}
