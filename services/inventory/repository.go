package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de produtos
type Repository interface {
	// EnsureSchema cria a tabela de produtos se ainda não existir
	EnsureSchema(ctx context.Context) error

	// ListProducts devolve todos os produtos ordenados por id
	ListProducts(ctx context.Context) ([]Product, error)

	// GetProduct busca um produto pelo ID
	GetProduct(ctx context.Context, productID int64) (*Product, error)

	// CreateProduct insere um novo produto e preenche o ID gerado
	CreateProduct(ctx context.Context, product *Product) error

	// UpdateProduct sobrescreve todos os campos; retorna false se o ID não existe
	UpdateProduct(ctx context.Context, product *Product) (bool, error)
}

// ProductRepository implementa Repository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) Repository {
	return &ProductRepository{
		db: db,
	}
}

// EnsureSchema cria a tabela de produtos se ainda não existir
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			stock INTEGER NOT NULL
		)
	`)
	return err
}

// ListProducts devolve todos os produtos ordenados por id
func (r *ProductRepository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, stock
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetProduct busca um produto pelo ID
func (r *ProductRepository) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	var product Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, stock
		FROM products WHERE id = $1
	`, productID).Scan(&product.ID, &product.Name, &product.Price, &product.Stock)

	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct insere um novo produto e preenche o ID gerado
func (r *ProductRepository) CreateProduct(ctx context.Context, product *Product) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO products (name, price, stock)
		VALUES ($1, $2, $3)
		RETURNING id
	`, product.Name, product.Price, product.Stock).Scan(&product.ID)
}

// UpdateProduct sobrescreve todos os campos; retorna false se o ID não existe
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *Product) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1, price = $2, stock = $3
		WHERE id = $4
	`, product.Name, product.Price, product.Stock, product.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
