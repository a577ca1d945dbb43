package sqlmodel

import (
	"context"
	"net/http"

	"github.com/gildas/go-errors"
)

type key int

const adapterContextKey key = iota * 31415

// FromContext retrieves an Adapter stored in the given context
func FromContext(context context.Context) (Adapter, error) {
	if adapter, ok := context.Value(adapterContextKey).(Adapter); ok {
		return adapter, nil
	}
	return nil, errors.ArgumentMissing.With("Adapter").WithStack()
}

// ToContext stores adapter to the given context
func ToContext(parent context.Context, adapter Adapter) context.Context {
	return context.WithValue(parent, adapterContextKey, adapter)
}

// HttpHandler wraps an Adapter in an http middleware Handler
//
// Handlers down the chain get it back with FromContext(r.Context()).
func HttpHandler(adapter Adapter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ToContext(r.Context(), adapter)))
		})
	}
}
