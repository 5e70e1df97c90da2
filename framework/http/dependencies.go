package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/upadhyeammit/smart-proxy/framework/container"
	"github.com/upadhyeammit/smart-proxy/framework/routing"
)

// DependenciesHandler serves the registrations of source's container.
//
//	GET /dependencies         → {"data": [{"name", "strategy", "resolved"}, ...]}
//	GET /dependencies/{name}  → {"data": {...}} or 404
//
// Neither route resolves anything.
type DependenciesHandler struct {
	source container.Locator
}

// NewDependenciesHandler creates a handler reading from source.
func NewDependenciesHandler(source container.Locator) *DependenciesHandler {
	return &DependenciesHandler{source: source}
}

// Routes mounts both endpoints under prefix.
func (h *DependenciesHandler) Routes(r *routing.Router, prefix string) {
	r.Prefix(prefix, func(r *routing.Router) {
		r.Get("/", h.Index)
		r.Get("/{name}", h.Show)
	})
}

// Index lists every registration sorted by name.
func (h *DependenciesHandler) Index(w http.ResponseWriter, _ *http.Request) {
	NewResponse(w).Success(h.source.ContainerInstance().Describe())
}

// Show describes a single registration.
func (h *DependenciesHandler) Show(w http.ResponseWriter, r *http.Request) {
	res := NewResponse(w)
	name := routing.Param(r, "name")

	d, err := h.source.ContainerInstance().DescribeOne(name)
	if errors.Is(err, container.ErrNotFound) {
		res.NotFound(fmt.Sprintf("dependency %q not registered", name))
		return
	}
	if err != nil {
		res.ServerError()
		return
	}
	res.Success(d)
}
