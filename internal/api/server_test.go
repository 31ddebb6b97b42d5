package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/config"
)

func newTestServer() *Server {
	return NewServer(&config.AppConfig{
		API: &config.APIConfig{},
		Stub: &config.StubConfig{
			JWTSigningKey:      "test-key",
			TokenTTL:           time.Hour,
			AllowedCORSDomains: []string{"https://app.example.com"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}, memstore.New())
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RequiresBearer(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/users/me", "/dashboard", "/folders/", "/games/abc"} {
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, w.Body.String(), path)
	}
}

func TestServer_SwaggerDocs(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quizcourse stub backend")
	assert.Contains(t, w.Body.String(), "/users/register")
}
