package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gitub.com/matheusmosca/purchase-workflow/upstream"
)

// ErrOrderUnavailable cobre pedido inexistente E Orders fora do ar:
// os dois casos são colapsados na mesma falha de validação de negócio
var ErrOrderUnavailable = errors.New("order not found or unavailable")

// PaymentUseCase contém a lógica de negócio dos pagamentos
type PaymentUseCase struct {
	repository Repository
	orders     upstream.Caller
}

// NewPaymentUseCase cria uma nova instância de PaymentUseCase
func NewPaymentUseCase(repository Repository, orders upstream.Caller) *PaymentUseCase {
	return &PaymentUseCase{
		repository: repository,
		orders:     orders,
	}
}

// CreatePayment valida que o pedido existe no serviço de Orders e insere o
// pagamento com status SUCCESS incondicionalmente. O amount é gravado como
// recebido, sem conferência contra o custo real do pedido, e o status do
// pedido referenciado nunca é atualizado.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, orderID int64, amount float64, method string) (*Payment, error) {
	outcome := uc.orders.Get(ctx, fmt.Sprintf("/orders/%d", orderID))
	if outcome.Status != upstream.StatusSuccess {
		log.Printf("ℹ️ [CREATE PAYMENT] order %d rejected: upstream %s", orderID, outcome.Status)
		return nil, ErrOrderUnavailable
	}

	payment := NewPayment(orderID, amount, method)
	if err := uc.repository.CreatePayment(ctx, payment); err != nil {
		log.Printf("❌ Failed to create payment: %v", err)
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	log.Printf("✅ Payment created: %d (order %d, method %s)", payment.ID, orderID, method)
	return payment, nil
}
