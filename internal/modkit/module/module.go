// Package module is the contract every service module satisfies so the api
// composer can mount its routes and hand its ports to sibling modules
package module

import (
	phttp "interviewcoach/internal/platform/net/http"
)

// Module is implemented by each services/<name>/module package.
// It lives apart from modkit so a module can import it alongside its own Ports type.
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	// Ports returns the values this module exposes to others, usually a struct
	Ports() any
}
