package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
)

// errorStatuses is matched in order: one error can wrap several targets (a
// store failure caused by a request deadline matches both the deadline and the
// failure reason), and the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoRowsAffected, http.StatusNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{ErrTitleRequired, http.StatusBadRequest},
	{ErrEmailRequired, http.StatusBadRequest},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{store.ErrUnavailable, http.StatusServiceUnavailable},
	{store.ErrBusy, http.StatusServiceUnavailable},
	{store.ErrReadOnly, http.StatusServiceUnavailable},
	{store.ErrConstraint, http.StatusConflict},
	{store.ErrCorrupt, http.StatusInternalServerError},
	{store.ErrIO, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
