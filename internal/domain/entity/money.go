package entity

// Money is a decimal amount as returned by the storefront, e.g. "24.00".
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// Image is a product image reference.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}
