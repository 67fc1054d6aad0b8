//go:build appengine
// +build appengine

package lol

import (
	"context"
	"net/http"

	"google.golang.org/appengine/urlfetch"
)

var (
	// DefaultClientProvider is a ClientProviderFunc which use urlfetch.
	// ctx must be derived from an App Engine request.
	DefaultClientProvider ClientProviderFunc = func(ctx context.Context) *http.Client {
		return urlfetch.Client(ctx)
	}
)
