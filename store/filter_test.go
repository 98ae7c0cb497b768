package store_test

import (
	"strings"
	"testing"

	"fortumars-mart/models"
	"fortumars-mart/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDefaultCriteriaReturnsWholeCatalog(t *testing.T) {
	catalog := models.DefaultCatalog()

	result := store.FilterProducts(catalog, store.DefaultCriteria())

	assert.Equal(t, catalog, result)
}

func TestFilterResultIsSubsetSatisfyingBothPredicates(t *testing.T) {
	catalog := models.DefaultCatalog()

	tests := []struct {
		name     string
		query    string
		category string
	}{
		{"query only", "camera", models.CategoryAll},
		{"category only", "", "Books"},
		{"query and category", "pro", "Electronics"},
		{"query matching description", "titanium", models.CategoryAll},
		{"no matches", "zzz-not-a-product", "Beauty"},
	}

	byID := map[string]models.Product{}
	for _, p := range catalog {
		byID[p.ID] = p
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := store.FilterProducts(catalog, store.Criteria{Query: tt.query, Category: tt.category})

			for _, p := range result {
				original, ok := byID[p.ID]
				require.True(t, ok, "result contains product not in catalog")
				assert.Equal(t, original, p)

				q := strings.ToLower(tt.query)
				matchesSearch := q == "" ||
					strings.Contains(strings.ToLower(p.Name), q) ||
					strings.Contains(strings.ToLower(p.Description), q)
				assert.True(t, matchesSearch, "product %s does not match query %q", p.ID, tt.query)

				if tt.category != models.CategoryAll {
					assert.Equal(t, tt.category, p.Category)
				}
			}
		})
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	catalog := models.DefaultCatalog()

	lower := store.FilterProducts(catalog, store.Criteria{Query: "espresso", Category: models.CategoryAll})
	upper := store.FilterProducts(catalog, store.Criteria{Query: "ESPRESSO", Category: models.CategoryAll})

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	catalog := models.DefaultCatalog()

	result := store.FilterProducts(catalog, store.Criteria{Query: "", Category: "Sports"})

	require.Len(t, result, 6)
	pos := -1
	for _, p := range result {
		found := -1
		for i, c := range catalog {
			if c.ID == p.ID {
				found = i
				break
			}
		}
		require.Greater(t, found, pos, "result out of catalog order")
		pos = found
	}
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	result := store.FilterProducts(models.DefaultCatalog(), store.Criteria{Query: "no such thing", Category: models.CategoryAll})

	assert.Empty(t, result)
	assert.NotNil(t, result)
}
