package models

// Alert is a stored request to be told when a product drops to a target price.
type Alert struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Product     string  `json:"product"`
	TargetPrice float64 `json:"targetPrice"`
	CreatedAt   string  `json:"createdAt"`
}

// Trigger is an alert whose product was found at or below its target price.
type Trigger struct {
	Alert  Alert
	Record PriceRecord
}
