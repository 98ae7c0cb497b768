package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"fortumars-mart/config"
	"fortumars-mart/models"
	"fortumars-mart/repositories"
	"fortumars-mart/store"
)

// ErrCatalogUnavailable reports an Add attempted while the remote store is
// down. Reads never see this error; they fall back to the bundled catalog.
var ErrCatalogUnavailable = errors.New("catalog store unavailable")

const (
	catalogCacheKey = "catalog:list"
	catalogCacheTTL = 5 * time.Minute

	// remoteFetchTimeout bounds the race between the remote store and the
	// bundled fallback.
	remoteFetchTimeout = 5 * time.Second
)

// CatalogService is the two-tier catalog source: remote documents first,
// bundled catalog whenever the remote store is unreachable or empty.
type CatalogService struct {
	repo *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{repo: repositories.NewProductRepository()}
}

// Resolve never fails. Remote errors and timeouts degrade to the bundled
// catalog; an empty remote store is seeded from the bundled catalog as a
// side effect and the bundled catalog is returned for this call, so the
// caller sees data without a second fetch.
func (s *CatalogService) Resolve(ctx context.Context) ([]models.Product, store.CatalogSource) {
	if config.DB == nil {
		log.Println("Catalog store not configured, using bundled catalog")
		return models.DefaultCatalog(), store.SourceFallback
	}

	if cached := s.readCache(ctx); cached != nil {
		return cached, store.SourceRemote
	}

	fetchCtx, cancel := context.WithTimeout(ctx, remoteFetchTimeout)
	defer cancel()

	products, err := s.repo.GetAll(fetchCtx)
	if err != nil {
		log.Printf("Catalog fetch failed, using bundled catalog: %v", err)
		return models.DefaultCatalog(), store.SourceFallback
	}

	if len(products) == 0 {
		log.Println("Remote catalog is empty, seeding from bundled catalog")
		seedCtx, seedCancel := context.WithTimeout(ctx, remoteFetchTimeout)
		defer seedCancel()
		if err := s.repo.SeedAll(seedCtx, models.DefaultCatalog()); err != nil {
			log.Printf("Catalog seeding failed: %v", err)
		}
		return models.DefaultCatalog(), store.SourceSeeded
	}

	s.writeCache(ctx, products)
	return products, store.SourceRemote
}

// Add writes one product document. Callers re-resolve afterwards; there is
// no incremental merge.
func (s *CatalogService) Add(ctx context.Context, p models.Product) error {
	if config.DB == nil {
		return ErrCatalogUnavailable
	}
	if err := s.repo.Insert(ctx, &p); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) readCache(ctx context.Context) []models.Product {
	if config.RedisClient == nil {
		return nil
	}
	cached, err := config.RedisClient.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil || len(products) == 0 {
		return nil
	}
	return products
}

func (s *CatalogService) writeCache(ctx context.Context, products []models.Product) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	config.RedisClient.Set(ctx, catalogCacheKey, string(data), catalogCacheTTL)
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(ctx, catalogCacheKey)
}
