// Package network provides pre-configured HTTP transports for communication with the Shikimori API.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// dialTimeout bounds the TCP connect plus TLS handshake of a single dial.
const dialTimeout = 30 * time.Second

// BrowserClient returns an HTTP client whose TLS handshake carries a Chrome
// Client Hello fingerprint. Anti-bot CDNs fronting the Shikimori API reject
// the standard Go handshake signature; impersonating prevalent browser
// traffic lets requests through.
//
// The client first negotiates HTTP/2 (preferred by modern CDNs) and
// transparently falls back to HTTP/1.1 when the h2 round trip fails.
func BrowserClient() *http.Client {
	browserOnce.Do(func() {
		browserClient = &http.Client{
			Timeout:   time.Minute,
			Transport: &browserTransport{h2: newH2Transport(), h1: newH1Transport()},
		}
	})
	return browserClient
}

var (
	browserOnce   sync.Once
	browserClient *http.Client
)

// browserTransport routes requests through the h2 transport and retries once
// over forced HTTP/1.1 when h2 negotiation fails.
type browserTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func (t *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, err
		}
		retry.Body = body
	}
	return t.h1.RoundTrip(retry)
}

func newH2Transport() *http2.Transport {
	return &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialTLS(ctx, network, addr, nil)
		},
	}
}

func newH1Transport() *http.Transport {
	return &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLS(ctx, network, addr, []string{"http/1.1"})
		},
	}
}

// dialTLS establishes a TLS connection mimicking Chrome 120's fingerprint.
// With nil nextProtos it advertises both h2 and http/1.1, matching natural
// Chrome behavior; passing {"http/1.1"} forces the fallback protocol.
func dialTLS(ctx context.Context, network, addr string, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
