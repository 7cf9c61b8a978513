package main

// Order representa um pedido no sistema
type Order struct {
	ID        int64  `json:"id" db:"id"`
	ProductID int64  `json:"product_id" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
	Status    string `json:"status" db:"status"`
}

// NewOrder cria uma nova instância de Order ainda sem ID
func NewOrder(productID int64, quantity int) *Order {
	return &Order{
		ProductID: productID,
		Quantity:  quantity,
		Status:    OrderStatusPending,
	}
}

// OrderStatusPending é o único status alcançável: não existe caminho de
// atualização ou cancelamento depois da criação
const OrderStatusPending = "PENDING"

// CreateOrderRequest representa a requisição para criar um pedido
type CreateOrderRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// ProductView é a projeção do produto devolvida pelo serviço de Inventory,
// usada apenas para a validação de estoque no momento da criação
type ProductView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
