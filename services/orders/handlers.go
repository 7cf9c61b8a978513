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

// OrderUseCaseInterface define a interface para o use case
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, productID int64, quantity int) (*Order, error)
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
}

// OrderHandler contém os handlers HTTP
type OrderHandler struct {
	useCase OrderUseCaseInterface
	tracer  trace.Tracer
}

// NewOrderHandler cria uma nova instância de OrderHandler
func NewOrderHandler(useCase OrderUseCaseInterface, tracer trace.Tracer) *OrderHandler {
	return &OrderHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// CreateOrder valida o produto referenciado no Inventory antes de inserir.
// Toda falha upstream vira 400 para o cliente, nunca 5xx: o contrato não
// distingue produto inexistente de Inventory fora do ar.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	span.SetAttributes(
		attribute.Int64("product_id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
	)

	order, err := h.useCase.CreateOrder(ctx, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, ErrProductUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found or unavailable"})
		return
	case errors.Is(err, ErrNotEnoughStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock"})
		return
	case err != nil:
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Int64("order_id", order.ID))
	c.JSON(http.StatusCreated, order)
}

// GetOrder busca um pedido pelo ID da rota, sem efeito colateral
func (h *OrderHandler) GetOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_order")
	defer span.End()

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	span.SetAttributes(attribute.Int64("order_id", orderID))

	order, err := h.useCase.GetOrder(ctx, orderID)
	if errors.Is(err, ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// HealthCheck verifica a saúde do serviço
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-service",
	})
}
