package repositories

import (
	"context"

	"fortumars-mart/config"
	"fortumars-mart/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// GetAll lists every product document ordered by name ascending, which is
// the catalog's wire ordering.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, category, rating, reviews_count, image, badge
	          FROM products ORDER BY name ASC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.Rating, &p.ReviewsCount, &p.Image, &p.Badge); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Insert writes one product document. A fresh id is minted when the product
// arrives without one.
func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO products (id, name, description, price, category, rating, reviews_count, image, badge)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := config.DB.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Rating, p.ReviewsCount, p.Image, p.Badge)
	return err
}

// SeedAll batch-inserts the bundled catalog, minting a fresh document id per
// item in place of the bundled one.
func (r *ProductRepository) SeedAll(ctx context.Context, products []models.Product) error {
	batch := &pgx.Batch{}
	query := `INSERT INTO products (id, name, description, price, category, rating, reviews_count, image, badge)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, p := range products {
		batch.Queue(query,
			uuid.NewString(), p.Name, p.Description, p.Price, p.Category, p.Rating, p.ReviewsCount, p.Image, p.Badge)
	}

	results := config.DB.SendBatch(ctx, batch)
	defer results.Close()

	for range products {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}
