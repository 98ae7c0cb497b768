package models

// CategoryAll is the filter sentinel meaning "no category restriction".
// It is a selector value only, never a product category.
const CategoryAll = "All"

// Categories is the fixed department list shown in the storefront,
// CategoryAll first.
var Categories = []string{
	CategoryAll,
	"Electronics",
	"Clothing",
	"Home & Kitchen",
	"Books",
	"Beauty",
	"Sports",
}

func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`
	Image        string  `json:"image"`
	Badge        string  `json:"badge,omitempty"`
}

// CartLine pairs a product with a quantity. Quantity is always >= 1; the
// ledger enforces at most one line per product id.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
