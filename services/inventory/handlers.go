package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InventoryUseCaseInterface define a interface para o use case
type InventoryUseCaseInterface interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productID int64) (*Product, error)
	CreateProduct(ctx context.Context, name string, price float64, stock int) (*Product, error)
	UpdateProduct(ctx context.Context, productID int64, name string, price float64, stock int) (*Product, error)
}

// InventoryHandler contém os handlers HTTP do catálogo
type InventoryHandler struct {
	useCase InventoryUseCaseInterface
	tracer  trace.Tracer
}

// NewInventoryHandler cria uma nova instância de InventoryHandler
func NewInventoryHandler(useCase InventoryUseCaseInterface, tracer trace.Tracer) *InventoryHandler {
	return &InventoryHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListProducts devolve todos os produtos do catálogo
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_products")
	defer span.End()

	products, err := h.useCase.ListProducts(ctx)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct busca um produto pelo ID da rota
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_product")
	defer span.End()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	span.SetAttributes(attribute.Int64("product_id", productID))

	product, err := h.useCase.GetProduct(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct valida os três campos e insere o produto
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_product")
	defer span.End()

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	span.SetAttributes(
		attribute.String("product_name", req.Name),
		attribute.Int("stock", *req.Stock),
	)

	product, err := h.useCase.CreateProduct(ctx, req.Name, *req.Price, *req.Stock)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct sobrescreve um produto existente com os três campos do body
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "update_product")
	defer span.End()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	span.SetAttributes(attribute.Int64("product_id", productID))

	product, err := h.useCase.UpdateProduct(ctx, productID, req.Name, *req.Price, *req.Stock)
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// HealthCheck verifica a saúde do serviço
func (h *InventoryHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "inventory-service",
	})
}
