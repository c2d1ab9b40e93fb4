package repeatform

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register net/http handlers.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount prefix for the component routes under
// basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePrefix)
}

// RegisterRoutes registers the component endpoints under basePath on mux
// and returns the mount prefix.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers the endpoints using a pre-built
// Options value. Callers are expected to pass an Options produced by
// NewOptions (or equivalent) so defaults and clamps apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	return registerHandlers(mux, basePath, newHandlers(opts))
}

func registerHandlers(mux Mux, basePath string, h *handlers) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("repeatform: missing mux")
	}
	prefix := mountPath(basePath, h.opts.RoutePrefix)

	mux.Handle("POST "+prefix+"/sessions", http.HandlerFunc(h.createSession))
	mux.Handle("GET "+prefix+"/sessions/{id}", http.HandlerFunc(h.getSession))
	mux.Handle("POST "+prefix+"/sessions/{id}/instances", http.HandlerFunc(h.addInstance))
	mux.Handle("DELETE "+prefix+"/sessions/{id}/binding", http.HandlerFunc(h.revokeBinding))

	return prefix, nil
}

// InstancesPath returns the add-instance endpoint for a session under the
// mount prefix returned by RegisterRoutes. The browser runtime POSTs to
// this path when the add affordance is activated.
func InstancesPath(prefix, sessionID string) string {
	return strings.TrimRight(prefix, "/") + "/sessions/" + sessionID + "/instances"
}

func mountPath(basePath, routePrefix string) string {
	basePath = strings.TrimSpace(basePath)
	routePrefix = strings.TrimSpace(routePrefix)

	if routePrefix == "" {
		routePrefix = "/"
	}
	if !strings.HasPrefix(routePrefix, "/") {
		routePrefix = "/" + routePrefix
	}
	routePrefix = strings.TrimRight(routePrefix, "/")

	if basePath == "" || basePath == "/" {
		return routePrefix
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePrefix
}
