// Package network provides the HTTP clients used to talk to the Shikimori
// API: a shared tuned client, and an optional browser-impersonating one for
// environments where the API sits behind anti-bot fronting.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client. Per-call deadlines come in through the
// request context; the client-level timeout only backstops requests issued
// without one.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
