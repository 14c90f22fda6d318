package http

import "net/http"

// Handler is a plain handler func; modules register these
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing seam modules mount on. AdaptChi provides the chi implementation.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Delete(path string, h Handler)
	Handle(path string, h http.Handler)

	// Use adds middleware to every route registered afterwards
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	// Route opens a sub-router under pattern
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for the server
	Mux() http.Handler
}
