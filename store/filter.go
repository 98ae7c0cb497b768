package store

import (
	"strings"

	"fortumars-mart/models"
)

// Criteria is the active search text and category selector. Category is
// always either models.CategoryAll or a member of the fixed category list.
type Criteria struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

func DefaultCriteria() Criteria {
	return Criteria{Query: "", Category: models.CategoryAll}
}

// FilterProducts returns the ordered subsequence of products matching the
// criteria: a case-insensitive substring match of the query against name or
// description (empty query matches everything) combined with category
// equality (CategoryAll matches everything). Input order is preserved.
func FilterProducts(products []models.Product, c Criteria) []models.Product {
	query := strings.ToLower(c.Query)

	result := []models.Product{}
	for _, p := range products {
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := c.Category == models.CategoryAll || p.Category == c.Category

		if matchesSearch && matchesCategory {
			result = append(result, p)
		}
	}
	return result
}
