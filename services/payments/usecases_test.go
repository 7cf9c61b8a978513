package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gitub.com/matheusmosca/purchase-workflow/upstream"
)

// MockRepository para testes que não precisam de banco real
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) CreatePayment(ctx context.Context, payment *Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockGateway simula o gateway de chamadas upstream
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Get(ctx context.Context, path string) upstream.Outcome {
	args := m.Called(ctx, path)
	return args.Get(0).(upstream.Outcome)
}

func orderOutcome() upstream.Outcome {
	return upstream.Outcome{
		Status: upstream.StatusSuccess,
		Body:   []byte(`{"id":1,"product_id":1,"quantity":3,"status":"PENDING"}`),
	}
}

func TestCreatePayment_OrderExists(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	ctx := context.Background()

	mockGateway.On("Get", ctx, "/orders/1").Return(orderOutcome())
	mockRepo.On("CreatePayment", ctx, mock.AnythingOfType("*main.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*Payment).ID = 1
		}).
		Return(nil)

	useCase := NewPaymentUseCase(mockRepo, mockGateway)

	// Act
	payment, err := useCase.CreatePayment(ctx, 1, 29.97, "fake-card")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), payment.ID)
	assert.Equal(t, int64(1), payment.OrderID)
	assert.Equal(t, 29.97, payment.Amount)
	assert.Equal(t, "fake-card", payment.Method)
	assert.Equal(t, PaymentStatusSuccess, payment.Status)
	mockRepo.AssertExpectations(t)
	mockGateway.AssertExpectations(t)
}

func TestCreatePayment_AmountIsNotValidated(t *testing.T) {
	// Arrange: zero e negativo são gravados como recebidos
	for _, amount := range []float64{0, -10.5, 1000000} {
		mockRepo := new(MockRepository)
		mockGateway := new(MockGateway)
		ctx := context.Background()

		mockGateway.On("Get", ctx, "/orders/1").Return(orderOutcome())
		mockRepo.On("CreatePayment", ctx, mock.AnythingOfType("*main.Payment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*Payment).ID = 1
			}).
			Return(nil)

		useCase := NewPaymentUseCase(mockRepo, mockGateway)

		// Act
		payment, err := useCase.CreatePayment(ctx, 1, amount, "fake-card")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, amount, payment.Amount)
		assert.Equal(t, PaymentStatusSuccess, payment.Status)
	}
}

func TestCreatePayment_OrderNotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	ctx := context.Background()

	mockGateway.On("Get", ctx, "/orders/999").
		Return(upstream.Outcome{Status: upstream.StatusNotFound})

	useCase := NewPaymentUseCase(mockRepo, mockGateway)

	// Act
	payment, err := useCase.CreatePayment(ctx, 999, 1, "x")

	// Assert
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, ErrOrderUnavailable)
	mockRepo.AssertNotCalled(t, "CreatePayment")
}

func TestCreatePayment_OrdersUnavailable(t *testing.T) {
	// Arrange: Orders fora do ar colapsa no mesmo erro de negócio
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	ctx := context.Background()

	mockGateway.On("Get", ctx, "/orders/1").
		Return(upstream.Outcome{Status: upstream.StatusUnavailable})

	useCase := NewPaymentUseCase(mockRepo, mockGateway)

	// Act
	payment, err := useCase.CreatePayment(ctx, 1, 29.97, "fake-card")

	// Assert
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, ErrOrderUnavailable)
	mockRepo.AssertNotCalled(t, "CreatePayment")
}
