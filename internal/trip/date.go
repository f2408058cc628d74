package trip

import (
	"fmt"
	"strings"
	"time"

	appErrors "github.com/camilourd/trip_tracker/errors"
)

const dateLayout = "2006-01-02"

// Date is a civil date without a time-of-day component. Trips and expenses
// are dated to the day, both in memory and in the persisted JSON.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a %s date", appErrors.ErrInvalidDateFormat, value, dateLayout)
	}
	return Date{t: parsed}, nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
