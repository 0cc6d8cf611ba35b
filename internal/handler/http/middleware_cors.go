package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows any origin and header together with every method the API
// and the static file server answer to.
var withCORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowedHeaders: []string{"*"},
	ExposedHeaders: []string{traceIDHeader},
	MaxAge:         300,
})
