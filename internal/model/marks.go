package model

import (
	"encoding/json"
	"math"
)

// Marks is a raw mark value. Marks are not range-validated, and unparseable
// bulk-import columns produce NaN, which has no JSON representation: it
// serializes as null while still grading into the lowest band.
type Marks float64

func (m Marks) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(m)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

func (m *Marks) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Marks(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Marks(f)
	return nil
}
