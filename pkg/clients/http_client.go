package clients

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

// timeout bounds every gateway round trip; a stuck upstream fails the
// confirmation instead of holding a worker.
const timeout = time.Second * 15

// HTTPClientI is the request surface the checkout gateway client needs.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
