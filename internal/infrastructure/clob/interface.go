package clob

import (
	"context"
	"net/url"
)

// ClobClient is the interface for the signed CLOB REST client.
//
//go:generate mockgen -source=interface.go -destination=mock/client_mock.go -package=mock
type ClobClient interface {
	// Get issues a builder-signed GET against the CLOB API and decodes the
	// 2xx JSON body into out.
	Get(ctx context.Context, path string, query url.Values, out any) error
	// Ping checks reachability of the API through its unsigned clock endpoint.
	Ping(ctx context.Context) error
}
