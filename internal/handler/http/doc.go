// Package http implements the HTTP transport layer of the application.
//
// It exposes the JSON API for users and to-do items under /api, the plain
// text version endpoint and the static frontend mounted at "/". Request
// tracing, access logging, response compression, CORS and request timeouts
// are handled here before requests reach the service layer.
package http
