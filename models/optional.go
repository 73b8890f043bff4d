package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OptionalDecimal distinguishes a JSON field that was omitted from one that
// was explicitly set to null. An omitted price leaves the stored value
// untouched on update, while an explicit null clears it.
type OptionalDecimal struct {
	Present bool
	Value   *decimal.Decimal
}

func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

func (o OptionalDecimal) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
