package model

// ShippingQuote is a quote returned by a shipping provider.
type ShippingQuote struct {
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimatedDays"`
}
