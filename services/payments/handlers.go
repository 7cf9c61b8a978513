package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentUseCaseInterface define a interface para o use case
type PaymentUseCaseInterface interface {
	CreatePayment(ctx context.Context, orderID int64, amount float64, method string) (*Payment, error)
}

// PaymentHandler contém os handlers HTTP
type PaymentHandler struct {
	useCase PaymentUseCaseInterface
	tracer  trace.Tracer
}

// NewPaymentHandler cria uma nova instância de PaymentHandler
func NewPaymentHandler(useCase PaymentUseCaseInterface, tracer trace.Tracer) *PaymentHandler {
	return &PaymentHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// CreatePayment valida o pedido referenciado no serviço de Orders antes de
// inserir. Toda falha upstream vira 400 para o cliente, nunca 5xx.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_payment")
	defer span.End()

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	span.SetAttributes(
		attribute.Int64("order_id", req.OrderID),
		attribute.String("method", req.Method),
	)

	payment, err := h.useCase.CreatePayment(ctx, req.OrderID, *req.Amount, req.Method)
	if errors.Is(err, ErrOrderUnavailable) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found or unavailable"})
		return
	}
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Int64("payment_id", payment.ID))
	c.JSON(http.StatusCreated, payment)
}

// HealthCheck verifica a saúde do serviço
func (h *PaymentHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "payments-service",
	})
}
