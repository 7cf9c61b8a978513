package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de pedidos
type Repository interface {
	// EnsureSchema cria a tabela de pedidos se ainda não existir
	EnsureSchema(ctx context.Context) error

	// CreateOrder insere um novo pedido e preenche o ID gerado
	CreateOrder(ctx context.Context, order *Order) error

	// GetOrder busca um pedido pelo ID
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
}

// OrderRepository implementa Repository usando PostgreSQL
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) Repository {
	return &OrderRepository{
		db: db,
	}
}

// EnsureSchema cria a tabela de pedidos se ainda não existir.
// product_id é uma referência fraca: nenhuma foreign key cruza serviços.
func (r *OrderRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			status TEXT NOT NULL
		)
	`)
	return err
}

// CreateOrder insere um novo pedido e preenche o ID gerado
func (r *OrderRepository) CreateOrder(ctx context.Context, order *Order) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO orders (product_id, quantity, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.ProductID, order.Quantity, order.Status).Scan(&order.ID)
}

// GetOrder busca um pedido pelo ID
func (r *OrderRepository) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, quantity, status
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.ProductID, &order.Quantity, &order.Status)

	if err != nil {
		return nil, err
	}
	return &order, nil
}
