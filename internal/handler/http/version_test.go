package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/stretchr/testify/assert"
)

func newHandlerWithAppInfo(svc service.AppInfoService) *Handler {
	return NewHandler(&service.Services{AppInfoService: svc}, config.Server{}, logger.Nop())
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(&mockAppInfoService{name: "sample-app", version: "v1.2.3-beta+build.42"})

	rr := httptest.NewRecorder()
	h.getServerVersion(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3-beta+build.42", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "sample-app", rr.Header().Get(appNameHeader))
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	router := newHandlerWithAppInfo(&mockAppInfoService{version: "dev"}).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dev", rr.Body.String())
}
