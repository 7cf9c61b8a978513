package main

// Product representa um item do catálogo de produtos
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
	Stock int     `json:"stock" db:"stock"`
}

// NewProduct cria uma nova instância de Product ainda sem ID
func NewProduct(name string, price float64, stock int) *Product {
	return &Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

// ProductRequest representa o body de criação e atualização de produtos.
// Price e Stock são ponteiros para aceitar zero e rejeitar campo ausente.
type ProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Stock *int     `json:"stock" binding:"required"`
}
