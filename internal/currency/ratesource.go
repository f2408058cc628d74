package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	appErrors "github.com/camilourd/trip_tracker/errors"
)

// DefaultRateURL points at a random-number feed standing in for a live
// dollar/peso rate. It is not a real rate feed; swap the RateSource to use
// one.
const DefaultRateURL = "https://csrng.net/csrng/csrng.php?min=3500&max=4500"

const DefaultRateTimeout = 10 * time.Second

// HTTPRateSource fetches the reference rate over a bounded-time HTTP call.
type HTTPRateSource struct {
	url    string
	client *http.Client
}

func NewHTTPRateSource(url string, timeout time.Duration) *HTTPRateSource {
	if url == "" {
		url = DefaultRateURL
	}
	if timeout <= 0 {
		timeout = DefaultRateTimeout
	}
	return &HTTPRateSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type ratePayload struct {
	Status string  `json:"status"`
	Random float64 `json:"random"`
}

func (s *HTTPRateSource) FetchReferenceRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, fmt.Errorf("%w: %v", appErrors.ErrRateLookupTimeout, err)
		}
		// Non-timeout transport failures surface as-is; retrying is the
		// caller's responsibility.
		return 0, fmt.Errorf("failed to fetch reference rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var payload []ratePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if len(payload) == 0 {
		return 0, fmt.Errorf("rate source returned an empty response")
	}
	return payload[0].Random, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
