package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL with a fixed per-request
// timeout. Redirects are relayed, not followed, and nothing is retried: the vendor
// proxy relays whatever the upstream answers and callers retry whole rounds.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://storeapi.kobo.com", 30*time.Second)
//	resp, err := client.R().Get("/v1/library/sync")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}
