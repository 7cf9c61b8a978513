package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"gitub.com/matheusmosca/purchase-workflow/upstream"
)

var (
	// ErrProductUnavailable cobre produto inexistente E Inventory fora do ar:
	// os dois casos são colapsados na mesma falha de validação de negócio
	ErrProductUnavailable = errors.New("product not found or unavailable")

	// ErrNotEnoughStock indica estoque insuficiente no momento da leitura
	ErrNotEnoughStock = errors.New("not enough stock")

	// ErrOrderNotFound indica que o ID consultado não existe localmente
	ErrOrderNotFound = errors.New("order not found")
)

// OrderUseCase contém a lógica de negócio dos pedidos
type OrderUseCase struct {
	repository Repository
	inventory  upstream.Caller
}

// NewOrderUseCase cria uma nova instância de OrderUseCase
func NewOrderUseCase(repository Repository, inventory upstream.Caller) *OrderUseCase {
	return &OrderUseCase{
		repository: repository,
		inventory:  inventory,
	}
}

// CreateOrder valida o produto no Inventory e só então insere o pedido.
// A leitura do estoque e o insert não são atômicos como unidade: duas
// criações concorrentes podem passar pela checagem com o mesmo estoque,
// e o estoque nunca é decrementado por atividade de pedido.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, productID int64, quantity int) (*Order, error) {
	outcome := uc.inventory.Get(ctx, fmt.Sprintf("/products/%d", productID))
	if outcome.Status != upstream.StatusSuccess {
		log.Printf("ℹ️ [CREATE ORDER] product %d rejected: upstream %s", productID, outcome.Status)
		return nil, ErrProductUnavailable
	}

	var product ProductView
	if err := json.Unmarshal(outcome.Body, &product); err != nil {
		log.Printf("❌ [CREATE ORDER] invalid product payload for %d: %v", productID, err)
		return nil, ErrProductUnavailable
	}

	if product.Stock < quantity {
		log.Printf("ℹ️ [CREATE ORDER] product %d rejected: stock %d < quantity %d", productID, product.Stock, quantity)
		return nil, ErrNotEnoughStock
	}

	order := NewOrder(productID, quantity)
	if err := uc.repository.CreateOrder(ctx, order); err != nil {
		log.Printf("❌ Failed to create order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("✅ Order created: %d (product %d, quantity %d)", order.ID, productID, quantity)
	return order, nil
}

// GetOrder busca um pedido pelo ID, sem efeito colateral
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	order, err := uc.repository.GetOrder(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
