package gobittrex

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FloatToString renders v in plain decimal notation, never with an exponent, as the exchange
// rejects "1e-05" style quantities. NaN and infinities are API_ERROR.
func FloatToString(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", NewError(API_ERROR, "invalid number %v", v)
	}
	return decimal.NewFromFloat(v).String(), nil
}

// Timestamp reads the exchange's zoneless timestamps as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	raw, err := strconv.Unquote(raw)
	if err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.ParseInLocation(BITTREX_TIME_LAYOUT, raw, time.UTC)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.UTC().Format(BITTREX_TIME_LAYOUT))), nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(GO_BIRTHDAY)
}
