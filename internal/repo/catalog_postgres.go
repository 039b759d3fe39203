package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

const uniqueViolation = "23505"

type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) Create(ctx context.Context, p models.CatalogProduct) (models.CatalogProduct, error) {
	query := `INSERT INTO products (title, price, image, quantity, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt, p.UpdatedAt = now, now

	err := r.db.QueryRowContext(ctx, query, p.Title, p.Price, p.Image, p.Quantity, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.CatalogProduct{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.CatalogProduct{}, err
	}
	return p, nil
}

func (r *PostgresCatalogRepository) GetAll(ctx context.Context) ([]models.CatalogProduct, error) {
	query := `SELECT id, title, price, image, quantity FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.CatalogProduct{}
	for rows.Next() {
		var p models.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresCatalogRepository) GetByID(ctx context.Context, id int) (models.CatalogProduct, error) {
	query := `SELECT id, title, price, image, quantity FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.CatalogProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogProduct{}, ErrProductNotFound
	}
	return p, err
}

// AdjustQuantity tells a missing product apart from a rejected change with a second lookup.
func (r *PostgresCatalogRepository) AdjustQuantity(ctx context.Context, id int, delta int) (models.CatalogProduct, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $1, updated_at = $2
		WHERE id = $3 AND quantity + $1 >= 0
		RETURNING id, title, price, image, quantity
	`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.CatalogProduct
	err := r.db.QueryRowContext(ctx, query, delta, time.Now().UTC().Format(time.RFC3339), id).
		Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.Quantity)

	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return models.CatalogProduct{}, getErr
		}
		return models.CatalogProduct{}, ErrInvalidQuantityChange
	}
	return p, err
}
