// Package httpfeed holds the request plumbing shared by HTTP activity
// providers: authenticated JSON GETs and the mapping of transport failures
// onto the activity error taxonomy.
package httpfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/swapwatch/internal/activity"
	transporthttp "github.com/gabapcia/swapwatch/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// GetJSON performs a GET request to url with the given headers and decodes
// the JSON response into v. Failures are classified with ClassifyError.
func GetJSON(ctx context.Context, c *retryablehttp.Client, url string, header http.Header, v any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", activity.ErrPermanent, err)
	}

	req.Header.Set("Accept", "application/json")
	for k, values := range header {
		for _, value := range values {
			req.Header.Add(k, value)
		}
	}

	res, err := c.Do(req)
	if err != nil {
		return ClassifyError(err)
	}

	return ClassifyError(transporthttp.DecodeJSON(res, v))
}

// ClassifyError wraps err with the activity sentinel matching its cause:
// 429 responses are rate limited, other 4xx responses are permanent and
// everything else (5xx, network and decoding failures) is transient.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *transporthttp.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", activity.ErrRateLimited, err)
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
			return fmt.Errorf("%w: %w", activity.ErrPermanent, err)
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: malformed response: %w", activity.ErrTransient, err)
	}

	return fmt.Errorf("%w: %w", activity.ErrTransient, err)
}
