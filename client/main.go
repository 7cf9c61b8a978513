package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config agrupa as URLs e tokens dos três serviços
type Config struct {
	InventoryBaseURL string
	OrdersBaseURL    string
	PaymentsBaseURL  string

	InventoryToken string
	OrdersToken    string
	PaymentsToken  string
}

// LoadConfig lê a configuração do ambiente com os defaults dos serviços
func LoadConfig() Config {
	return Config{
		InventoryBaseURL: getEnv("INVENTORY_BASE_URL", "http://localhost:5001"),
		OrdersBaseURL:    getEnv("ORDERS_BASE_URL", "http://localhost:5002"),
		PaymentsBaseURL:  getEnv("PAYMENTS_BASE_URL", "http://localhost:5003"),
		InventoryToken:   getEnv("INVENTORY_TOKEN", "SECRET_PRODUCTS_TOKEN"),
		OrdersToken:      getEnv("ORDERS_TOKEN", "SECRET_ORDERS_TOKEN"),
		PaymentsToken:    getEnv("PAYMENTS_TOKEN", "SECRET_PAYMENTS_TOKEN"),
	}
}

// console encapsula a leitura de stdin e o client HTTP compartilhado
type console struct {
	cfg    Config
	reader *bufio.Reader
	client *resty.Client
}

func main() {
	c := &console{
		cfg:    LoadConfig(),
		reader: bufio.NewReader(os.Stdin),
		client: resty.New().SetTimeout(3 * time.Second),
	}

	for {
		fmt.Println("\n=== PURCHASE WORKFLOW CLIENT ===")
		fmt.Println("1) Create product")
		fmt.Println("2) List products")
		fmt.Println("3) Create order")
		fmt.Println("4) Get order")
		fmt.Println("5) Create payment")
		fmt.Println("0) Quit")

		switch c.prompt("Option: ") {
		case "1":
			c.createProduct()
		case "2":
			c.listProducts()
		case "3":
			c.createOrder()
		case "4":
			c.getOrder()
		case "5":
			c.createPayment()
		case "0":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (c *console) createProduct() {
	fmt.Println("\n=== Create product ===")
	name := c.prompt("Product name: ")
	price, err := c.promptFloat("Price: ")
	if err != nil {
		fmt.Println("Invalid price.")
		return
	}
	stock, err := c.promptInt("Initial stock: ")
	if err != nil {
		fmt.Println("Invalid stock.")
		return
	}

	c.send(func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(c.cfg.InventoryToken).
			SetBody(map[string]any{"name": name, "price": price, "stock": stock}).
			Post(c.cfg.InventoryBaseURL + "/products")
	})
}

func (c *console) listProducts() {
	fmt.Println("\n=== List products ===")
	c.send(func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(c.cfg.InventoryToken).
			Get(c.cfg.InventoryBaseURL + "/products")
	})
}

func (c *console) createOrder() {
	fmt.Println("\n=== Create order ===")
	productID, err := c.promptInt("Product ID: ")
	if err != nil {
		fmt.Println("Invalid product ID.")
		return
	}
	quantity, err := c.promptInt("Quantity: ")
	if err != nil {
		fmt.Println("Invalid quantity.")
		return
	}

	c.send(func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(c.cfg.OrdersToken).
			SetBody(map[string]any{"product_id": productID, "quantity": quantity}).
			Post(c.cfg.OrdersBaseURL + "/orders")
	})
}

func (c *console) getOrder() {
	fmt.Println("\n=== Get order ===")
	orderID, err := c.promptInt("Order ID: ")
	if err != nil {
		fmt.Println("Invalid order ID.")
		return
	}

	c.send(func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(c.cfg.OrdersToken).
			Get(fmt.Sprintf("%s/orders/%d", c.cfg.OrdersBaseURL, orderID))
	})
}

func (c *console) createPayment() {
	fmt.Println("\n=== Create payment ===")
	orderID, err := c.promptInt("Order ID: ")
	if err != nil {
		fmt.Println("Invalid order ID.")
		return
	}
	amount, err := c.promptFloat("Amount: ")
	if err != nil {
		fmt.Println("Invalid amount.")
		return
	}
	method := c.prompt("Payment method (e.g. fake-card): ")

	c.send(func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(c.cfg.PaymentsToken).
			SetBody(map[string]any{"order_id": orderID, "amount": amount, "method": method}).
			Post(c.cfg.PaymentsBaseURL + "/payments")
	})
}

// send executa a requisição e imprime status + body; erro de rede ou
// timeout é reportado sem retry
func (c *console) send(do func(r *resty.Request) (*resty.Response, error)) {
	resp, err := do(c.client.R())
	if err != nil {
		fmt.Printf("\n[ERROR] request failed: %v\n", err)
		fmt.Println("        Check that the target service is up.")
		return
	}

	fmt.Println("\n--- HTTP response ---")
	fmt.Println("Status:", resp.StatusCode())
	fmt.Println("Body:", strings.TrimSpace(string(resp.Body())))
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	line, _ := c.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *console) promptInt(label string) (int64, error) {
	return strconv.ParseInt(c.prompt(label), 10, 64)
}

func (c *console) promptFloat(label string) (float64, error) {
	return strconv.ParseFloat(c.prompt(label), 64)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
