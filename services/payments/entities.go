package main

// Payment representa um pagamento registrado para um pedido
type Payment struct {
	ID      int64   `json:"id" db:"id"`
	OrderID int64   `json:"order_id" db:"order_id"`
	Amount  float64 `json:"amount" db:"amount"`
	Method  string  `json:"method" db:"method"`
	Status  string  `json:"status" db:"status"`
}

// NewPayment cria uma nova instância de Payment ainda sem ID
func NewPayment(orderID int64, amount float64, method string) *Payment {
	return &Payment{
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  PaymentStatusSuccess,
	}
}

// PaymentStatusSuccess é o único status alcançável: não existe
// processamento de pagamento, a existência do pedido é o único gate
const PaymentStatusSuccess = "SUCCESS"

// CreatePaymentRequest representa a requisição para criar um pagamento.
// Amount é ponteiro para aceitar zero e negativos e rejeitar campo ausente;
// o valor não é conferido contra o custo real do pedido.
type CreatePaymentRequest struct {
	OrderID int64    `json:"order_id" binding:"required"`
	Amount  *float64 `json:"amount" binding:"required"`
	Method  string   `json:"method" binding:"required"`
}
