package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace/noop"

	"gitub.com/matheusmosca/purchase-workflow/auth"
	"gitub.com/matheusmosca/purchase-workflow/upstream"
)

const testToken = "SECRET_PAYMENTS_TOKEN"

func setupRouter(useCase PaymentUseCaseInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPaymentHandler(useCase, noop.NewTracerProvider().Tracer("test"))

	r := gin.New()
	authenticated := r.Group("/", auth.Middleware(auth.NewBearerToken(testToken)))
	authenticated.POST("/payments", handler.CreatePayment)
	return r
}

func doRequest(r *gin.Engine, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentHandler_Created(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	mockGateway.On("Get", mock.Anything, "/orders/1").Return(orderOutcome())
	mockRepo.On("CreatePayment", mock.Anything, mock.AnythingOfType("*main.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*Payment).ID = 1
		}).
		Return(nil)
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	// Act
	w := doRequest(r, `{"order_id":1,"amount":29.97,"method":"fake-card"}`, true)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"order_id":1,"amount":29.97,"method":"fake-card","status":"SUCCESS"}`, w.Body.String())
}

func TestCreatePaymentHandler_OrderNotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	mockGateway.On("Get", mock.Anything, "/orders/999").
		Return(upstream.Outcome{Status: upstream.StatusNotFound})
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	// Act
	w := doRequest(r, `{"order_id":999,"amount":1,"method":"x"}`, true)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Order not found or unavailable"}`, w.Body.String())
	mockRepo.AssertNotCalled(t, "CreatePayment")
}

func TestCreatePaymentHandler_OrdersUnavailableIsNever5xx(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	mockGateway.On("Get", mock.Anything, "/orders/1").
		Return(upstream.Outcome{Status: upstream.StatusUnavailable})
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	// Act
	w := doRequest(r, `{"order_id":1,"amount":29.97,"method":"fake-card"}`, true)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Order not found or unavailable"}`, w.Body.String())
	mockRepo.AssertNotCalled(t, "CreatePayment")
}

func TestCreatePaymentHandler_MissingFields(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	cases := []string{
		`{}`,
		`{"order_id":1,"amount":29.97}`,
		`{"order_id":1,"method":"fake-card"}`,
		`{"amount":29.97,"method":"fake-card"}`,
		`{"order_id":1,"amount":29.97,"method":""}`,
	}

	for _, body := range cases {
		// Act
		w := doRequest(r, body, true)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Missing fields"}`, w.Body.String(), body)
	}
	mockGateway.AssertNotCalled(t, "Get")
}

func TestCreatePaymentHandler_ZeroAmountIsNotMissing(t *testing.T) {
	// Arrange: amount zero é aceito, só campo ausente é rejeitado
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	mockGateway.On("Get", mock.Anything, "/orders/1").Return(orderOutcome())
	mockRepo.On("CreatePayment", mock.Anything, mock.AnythingOfType("*main.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*Payment).ID = 1
		}).
		Return(nil)
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	// Act
	w := doRequest(r, `{"order_id":1,"amount":0,"method":"fake-card"}`, true)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"order_id":1,"amount":0,"method":"fake-card","status":"SUCCESS"}`, w.Body.String())
}

func TestCreatePaymentHandler_Unauthorized(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	mockGateway := new(MockGateway)
	r := setupRouter(NewPaymentUseCase(mockRepo, mockGateway))

	// Act
	w := doRequest(r, `{"order_id":1,"amount":29.97,"method":"fake-card"}`, false)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	mockGateway.AssertNotCalled(t, "Get")
}
