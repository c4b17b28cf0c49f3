package models

// RateSnapshot holds exchange rates for supported currencies, expressed
// relative to a base currency.
type RateSnapshot struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Equal reports whether two snapshots carry the same base and rates.
func (s *RateSnapshot) Equal(other *RateSnapshot) bool {
	if other == nil {
		return false
	}
	if s.Base != other.Base || len(s.Rates) != len(other.Rates) {
		return false
	}
	for currency, rate := range s.Rates {
		otherRate, ok := other.Rates[currency]
		if !ok || otherRate != rate {
			return false
		}
	}
	return true
}

// RateUpdate is a single emission of the rates feed: either a fresh
// snapshot or a user-facing error message, never both.
type RateUpdate struct {
	Snapshot *RateSnapshot
	Err      string
}
