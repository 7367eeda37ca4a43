package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Price tags. The storefront renders each shape differently: a single
// amount, a "từ … đến …" span, a struck-through old price, or "liên hệ"
// (contact us for pricing).
const (
	PriceFixed    = "fixed"
	PriceRange    = "range"
	PriceDiscount = "discount"
	PriceContact  = "contact"
)

// Price is the tagged union describing how a curtain is priced. Only the
// fields belonging to the active tag are meaningful; the rest stay zero and
// are omitted on the wire.
// Amount carries the fixed tag's value; the name leaves Value free for the
// driver.Valuer method while the wire key stays "value".
type Price struct {
	Type   string  `json:"type"`
	Amount float64 `json:"value,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Old    float64 `json:"old,omitempty"`
	New    float64 `json:"new,omitempty"`
}

// Price is stored as a single jsonb column.
func (p Price) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Price) Scan(value interface{}) error {
	if value == nil {
		*p = Price{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported price column type %T", value)
	}
	return json.Unmarshal(data, p)
}

// KnownType reports whether the tag is one of the four shapes the
// storefront understands.
func (p Price) KnownType() bool {
	switch p.Type {
	case PriceFixed, PriceRange, PriceDiscount, PriceContact:
		return true
	}
	return false
}
