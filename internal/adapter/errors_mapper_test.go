package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Infogain-GenAI/sample-app1/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "details", tt.status)
			}))
			defer srv.Close()

			client := utils.NewHTTPClient(srv.URL, 0).SetRetryCount(0)
			resp, err := client.R().Get("/")
			require.NoError(t, err)

			got := mapHTTPError(resp)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "details")
		})
	}
}

func TestMapHTTPError_SuccessAndUnknown(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	client := utils.NewHTTPClient(srv.URL, 0)

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.NoError(t, mapHTTPError(resp))

	status = http.StatusTeapot
	resp, err = client.R().Get("/")
	require.NoError(t, err)
	got := mapHTTPError(resp)
	require.Error(t, got)
	assert.Contains(t, got.Error(), "http 418")
}
