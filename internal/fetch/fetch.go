package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultResource is the well-known name of the mapping document.
const DefaultResource = "variable_info.json"

// TransportError reports a non-success HTTP status from the document
// source. The message carries the status code so it surfaces verbatim in
// the viewer's error indicator.
type TransportError struct {
	URL    string
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
}

// Fetch retrieves the mapping document over HTTP with a single GET. A nil
// client uses http.DefaultClient. Non-2xx statuses are a TransportError;
// there is no retry, and cancellation comes only from ctx.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	return body, nil
}

// Load reads the raw document from an http(s) URL or a local file path.
func Load(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, nil, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}
