package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/camilourd/trip_tracker/errors"
)

type stubSource struct {
	rate  float64
	err   error
	calls int
}

func (s *stubSource) FetchReferenceRate(ctx context.Context) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.rate, nil
}

func TestConvertReferencePlaceIsIdentity(t *testing.T) {
	source := &stubSource{rate: 4000}
	converter := NewConverter(source)

	for _, amount := range []float64{0, 1, 200000, 0.5} {
		got, err := converter.Convert(context.Background(), "colombia", amount)
		require.NoError(t, err)
		require.Equal(t, amount, got)
	}
	require.Zero(t, source.calls, "reference place must not hit the rate source")
}

func TestConvertRejectsNegativeAmounts(t *testing.T) {
	converter := NewConverter(&stubSource{rate: 4000})

	for _, place := range []string{"colombia", "usa", "europa"} {
		_, err := converter.Convert(context.Background(), place, -1)
		require.ErrorIs(t, err, appErrors.ErrNegativeAmount, "place %s", place)
	}
}

func TestConvertAppliesRate(t *testing.T) {
	converter := NewConverter(&stubSource{rate: 4000})

	got, err := converter.Convert(context.Background(), "usa", 50)
	require.NoError(t, err)
	require.Equal(t, 50*4000.0, got)

	got, err = converter.Convert(context.Background(), "europa", 50)
	require.NoError(t, err)
	require.Equal(t, 50*(4000.0+EuroRateMarkup), got)
}

func TestConvertPropagatesSourceErrors(t *testing.T) {
	sourceErr := errors.New("boom")
	converter := NewConverter(&stubSource{err: sourceErr})

	_, err := converter.Convert(context.Background(), "usa", 10)
	require.ErrorIs(t, err, sourceErr)
}

func TestHTTPRateSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"status":"success","min":3500,"max":4500,"random":4012}]`))
	}))
	defer server.Close()

	source := NewHTTPRateSource(server.URL, time.Second)
	rate, err := source.FetchReferenceRate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4012.0, rate)
}

func TestHTTPRateSourceTimeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-done
	}))
	defer server.Close()
	defer close(done)

	source := NewHTTPRateSource(server.URL, 50*time.Millisecond)
	_, err := source.FetchReferenceRate(context.Background())
	require.ErrorIs(t, err, appErrors.ErrRateLookupTimeout)
}

func TestHTTPRateSourceBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewHTTPRateSource(server.URL, time.Second)
	_, err := source.FetchReferenceRate(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, appErrors.ErrRateLookupTimeout)
}
