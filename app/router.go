package app

import (
	"fmt"
	"regexp"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// isPath is the regexp every message path must match.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]zid.Handler
}

var _ zid.Registry = (*Router)(nil)
var _ zid.Handler = (*Router)(nil)

// NewRouter returns a new empty router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]zid.Handler),
	}
}

// Handle adds a new handler for the path of the given message. It panics if
// another handler was already registered or the path is not valid.
func (r *Router) Handle(msg zid.Msg, h zid.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered handler for this path. It returns a
// handler that always fails if no handler is registered.
func (r *Router) handler(path string) zid.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, store, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(zid.Context, zid.KVStore, zid.Tx) (*zid.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}

func (path notFoundHandler) Deliver(zid.Context, zid.KVStore, zid.Tx) (*zid.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}
