package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// mountStatic serves h.staticDir at "/". Directory requests get index.html.
// A missing directory is logged and leaves "/" unrouted.
func (h *Handler) mountStatic(router chi.Router) {
	if h.staticDir == "" {
		return
	}

	info, err := os.Stat(h.staticDir)
	if err != nil || !info.IsDir() {
		h.logger.Warn().Str("dir", h.staticDir).Msg("static directory not found; static files are not served")
		return
	}

	fileServer := http.FileServer(http.Dir(h.staticDir))
	router.Get("/*", fileServer.ServeHTTP)
	router.Head("/*", fileServer.ServeHTTP)
}
