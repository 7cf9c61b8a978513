package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de pagamentos
type Repository interface {
	// EnsureSchema cria a tabela de pagamentos se ainda não existir
	EnsureSchema(ctx context.Context) error

	// CreatePayment insere um novo pagamento e preenche o ID gerado
	CreatePayment(ctx context.Context, payment *Payment) error
}

// PaymentRepository implementa Repository usando PostgreSQL
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository cria uma nova instância de PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) Repository {
	return &PaymentRepository{
		db: db,
	}
}

// EnsureSchema cria a tabela de pagamentos se ainda não existir.
// order_id é uma referência fraca, validada só no momento da criação.
func (r *PaymentRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			method TEXT NOT NULL,
			status TEXT NOT NULL
		)
	`)
	return err
}

// CreatePayment insere um novo pagamento e preenche o ID gerado
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *Payment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, payment.OrderID, payment.Amount, payment.Method, payment.Status).Scan(&payment.ID)
}
