package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Metric is a statistic that may be undefined. Undefined values are NaN
// and encode as JSON null.
type Metric float64

// Undefined returns an undefined metric.
func Undefined() Metric {
	return Metric(math.NaN())
}

// Valid returns true if the metric holds a finite value.
func (m Metric) Valid() bool {
	f := float64(m)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float returns the underlying value.
func (m Metric) Float() float64 {
	return float64(m)
}

// Format renders the metric with prec decimals, or "NaN" when undefined.
func (m Metric) Format(prec int) string {
	if !m.Valid() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(m), 'f', prec, 64)
}

// MarshalJSON encodes undefined metrics as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON decodes null as undefined.
func (m *Metric) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = Undefined()
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Metric(f)
	return nil
}
