package http

import (
	"io"
	"net/http"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
)

// appNameHeader carries the configured application title next to the version.
const appNameHeader = "X-App-Name"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(appNameHeader, info.GetAppName(r.Context()))
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, info.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
