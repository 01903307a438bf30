package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const horizonAccept = "application/hal+json"

// HTTPClient is a resty client bound to one Horizon instance.
type HTTPClient struct {
	*resty.Client
}

// NewHorizonHTTPClient returns a client rooted at baseURL that asks for HAL
// JSON and gives up after timeout. Every call gets its own connection pool.
func NewHorizonHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", horizonAccept)

	return &HTTPClient{Client: c}
}
