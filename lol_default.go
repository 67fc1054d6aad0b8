//go:build !appengine
// +build !appengine

package lol

import (
	"context"
	"net/http"
)

var (
	// DefaultClientProvider is a simple ClientProviderFunc which returns http.DefaultClient
	DefaultClientProvider ClientProviderFunc = func(context.Context) *http.Client {
		return http.DefaultClient
	}
)
