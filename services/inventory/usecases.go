package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
)

// ErrProductNotFound indica que o ID consultado não existe no catálogo
var ErrProductNotFound = errors.New("product not found")

// InventoryUseCase contém a lógica de negócio do catálogo
type InventoryUseCase struct {
	repository Repository
}

// NewInventoryUseCase cria uma nova instância de InventoryUseCase
func NewInventoryUseCase(repository Repository) *InventoryUseCase {
	return &InventoryUseCase{
		repository: repository,
	}
}

// ListProducts devolve o catálogo completo
func (uc *InventoryUseCase) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := uc.repository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct busca um produto pelo ID
func (uc *InventoryUseCase) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	product, err := uc.repository.GetProduct(ctx, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// CreateProduct insere um produto novo no catálogo
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, name string, price float64, stock int) (*Product, error) {
	product := NewProduct(name, price, stock)
	if err := uc.repository.CreateProduct(ctx, product); err != nil {
		log.Printf("❌ Failed to create product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Product created: %d (%s)", product.ID, product.Name)
	return product, nil
}

// UpdateProduct sobrescreve nome, preço e estoque de um produto existente.
// Não há atualização parcial: os três campos são sempre gravados juntos.
func (uc *InventoryUseCase) UpdateProduct(ctx context.Context, productID int64, name string, price float64, stock int) (*Product, error) {
	product := &Product{
		ID:    productID,
		Name:  name,
		Price: price,
		Stock: stock,
	}

	updated, err := uc.repository.UpdateProduct(ctx, product)
	if err != nil {
		log.Printf("❌ Failed to update product %d: %v", productID, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !updated {
		return nil, ErrProductNotFound
	}

	log.Printf("✅ Product updated: %d (%s)", product.ID, product.Name)
	return product, nil
}
