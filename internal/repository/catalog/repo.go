// Package catalog implements product persistence over PostgreSQL.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// NUMERIC columns come back as text and are parsed into decimals on scan,
// so prices and ratings never pass through float64.
const productColumns = `id, name, description, category, price::text, brand, sku,
	tags, features, stock_quantity, rating::text, review_count, image_url,
	active, created_at, updated_at`

// Repo is the PostgreSQL-backed product catalog.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p             domain.Product
		price, rating string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &price, &p.Brand, &p.SKU,
		&p.Tags, &p.Features, &p.StockQuantity, &rating, &p.ReviewCount,
		&p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Product{}, fmt.Errorf("parse price: %w", err)
	}
	if p.Rating, err = decimal.NewFromString(rating); err != nil {
		return domain.Product{}, fmt.Errorf("parse rating: %w", err)
	}
	return p, nil
}

func (r *Repo) collect(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// GetByID returns a product regardless of its active flag, so callers can
// inspect soft-deleted records.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return domain.Product{}, err
	}
	return p, nil
}

// List returns a page of active products, newest first.
func (r *Repo) List(ctx context.Context, page, size int) (domain.Page, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE active`).Scan(&total); err != nil {
		return domain.Page{}, fmt.Errorf("count products: %w", err)
	}

	products, err := r.collect(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{Items: products, Page: page, Size: size, Total: total}, nil
}

// ListByCategory returns active products of a category, newest first.
func (r *Repo) ListByCategory(ctx context.Context, cat domain.Category) ([]domain.Product, error) {
	return r.collect(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active AND category = $1
		 ORDER BY created_at DESC`, string(cat))
}

// SearchByKeyword matches the keyword case-insensitively against product
// names and descriptions.
func (r *Repo) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Product, error) {
	pattern := "%" + keyword + "%"
	return r.collect(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active AND (name ILIKE $1 OR description ILIKE $1)
		 ORDER BY created_at DESC`, pattern)
}

// ListByPriceRange returns active products priced within [min, max], cheapest
// first.
func (r *Repo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error) {
	return r.collect(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active AND price >= $1 AND price <= $2
		 ORDER BY price ASC`, min.String(), max.String())
}

// TopRated returns the highest-rated active products that have at least one
// review, ties broken by review count.
func (r *Repo) TopRated(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.collect(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE active AND review_count > 0
		 ORDER BY rating DESC, review_count DESC
		 LIMIT $1`, limit)
}

// ListAllActive streams the full active catalog, used for bulk reindexing.
func (r *Repo) ListAllActive(ctx context.Context) ([]domain.Product, error) {
	return r.collect(ctx,
		`SELECT `+productColumns+` FROM products WHERE active ORDER BY id`)
}

// Insert persists a new product and fills in the generated ID and timestamps.
func (r *Repo) Insert(ctx context.Context, p *domain.Product) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, category, price, brand, sku,
			tags, features, stock_quantity, rating, review_count, image_url, active)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10::numeric, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Description, string(p.Category), p.Price.String(), p.Brand,
		p.SKU, p.Tags, p.Features, p.StockQuantity, p.Rating.String(),
		p.ReviewCount, p.ImageURL, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update rewrites all mutable fields of an existing product.
func (r *Repo) Update(ctx context.Context, p *domain.Product) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE products SET
			name = $2, description = $3, category = $4, price = $5::numeric,
			brand = $6, sku = $7, tags = $8, features = $9, stock_quantity = $10,
			rating = $11::numeric, review_count = $12, image_url = $13,
			active = $14, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		p.ID, p.Name, p.Description, string(p.Category), p.Price.String(),
		p.Brand, p.SKU, p.Tags, p.Features, p.StockQuantity, p.Rating.String(),
		p.ReviewCount, p.ImageURL, p.Active,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d: %w", p.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marks a product inactive without removing the row.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByCategory returns the number of active products per category.
func (r *Repo) CountByCategory(ctx context.Context) (map[domain.Category]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT category, count(*) FROM products WHERE active GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Category]int64)
	for rows.Next() {
		var (
			cat   string
			count int64
		)
		if err := rows.Scan(&cat, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[domain.Category(cat)] = count
	}
	return counts, rows.Err()
}

// DistinctBrands lists the brands present in the active catalog.
func (r *Repo) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.collectStrings(ctx,
		`SELECT DISTINCT brand FROM products WHERE active AND brand <> '' ORDER BY brand`)
}

// DistinctTags lists every tag used by an active product.
func (r *Repo) DistinctTags(ctx context.Context) ([]string, error) {
	return r.collectStrings(ctx,
		`SELECT DISTINCT unnest(tags) AS tag FROM products WHERE active ORDER BY tag`)
}

func (r *Repo) collectStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query strings: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan string: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Ping reports whether the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
