package model

// ProductType identifies the subscription tier a product sells.
type ProductType string

// Known subscription tiers.
const (
	TypeStudent ProductType = "student"
	TypePro     ProductType = "pro"
	TypePremium ProductType = "premium"
)

// Valid reports whether t is one of the known tiers.
func (t ProductType) Valid() bool {
	switch t {
	case TypeStudent, TypePro, TypePremium:
		return true
	}
	return false
}

// Product represents a subscription tier in the gift catalogue.
// The catalogue is loaded once at startup and read-only afterwards.
type Product struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	Price       float64     `json:"price" db:"price"`
	OldPrice    float64     `json:"oldPrice" db:"old_price"`
	Type        ProductType `json:"type" db:"type"`
	Features    []string    `json:"features" db:"features"`
}
