// Package currency converts destination-local amounts into the reference
// currency (Colombian pesos). The reference rate comes from a pluggable
// source so tests can inject deterministic values.
package currency

import (
	"context"
	"fmt"

	appErrors "github.com/camilourd/trip_tracker/errors"
)

// ReferencePlace is the locale whose currency everything is stored in.
// Converting for it is the identity and never touches the rate source.
const ReferencePlace = "colombia"

// EuroRateMarkup is added to the dollar reference rate when converting for
// destinations outside the USA.
const EuroRateMarkup = 200

type RateSource interface {
	FetchReferenceRate(ctx context.Context) (float64, error)
}

type Converter struct {
	source RateSource
}

func NewConverter(source RateSource) Converter {
	return Converter{source: source}
}

// Convert rejects negative amounts for every place, returns reference-locale
// amounts unchanged, and otherwise multiplies by the fetched rate (plus the
// euro markup for non-USA destinations).
func (c Converter) Convert(ctx context.Context, place string, amount float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrNegativeAmount, amount)
	}
	if place == ReferencePlace {
		return amount, nil
	}

	rate, err := c.source.FetchReferenceRate(ctx)
	if err != nil {
		return 0, err
	}
	if place == "usa" {
		return amount * rate, nil
	}
	return amount * (rate + EuroRateMarkup), nil
}
