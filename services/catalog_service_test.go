package services

import (
	"context"
	"testing"

	"fortumars-mart/models"
	"fortumars-mart/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a configured database (config.DB is nil in tests) Resolve must
// degrade to the bundled catalog and tag the result as fallback.
func TestResolveFallsBackToBundledCatalog(t *testing.T) {
	svc := NewCatalogService()

	products, source := svc.Resolve(context.Background())

	assert.Equal(t, store.SourceFallback, source)
	require.Len(t, products, 36)

	electronics := 0
	for _, p := range products {
		if p.Category == "Electronics" {
			electronics++
		}
	}
	assert.Equal(t, 6, electronics)
}

func TestResolveReturnsMutableCopy(t *testing.T) {
	svc := NewCatalogService()

	first, _ := svc.Resolve(context.Background())
	first[0].Name = "mutated"

	second, _ := svc.Resolve(context.Background())
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestAddFailsWhenCatalogStoreUnavailable(t *testing.T) {
	svc := NewCatalogService()

	err := svc.Add(context.Background(), models.Product{Name: "Anything", Price: 1, Category: "Books"})

	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
