package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateway_Get_Success(t *testing.T) {
	// Arrange
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":1,"name":"Widget","price":9.99,"stock":5}`))
	}))
	defer srv.Close()

	gateway := New(srv.URL, "SECRET_PRODUCTS_TOKEN")

	// Act
	outcome := gateway.Get(context.Background(), "/products/1")

	// Assert
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.JSONEq(t, `{"id":1,"name":"Widget","price":9.99,"stock":5}`, string(outcome.Body))
	assert.Equal(t, "Bearer SECRET_PRODUCTS_TOKEN", gotAuth)
}

func TestGateway_Get_NotFound(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Product not found"}`))
	}))
	defer srv.Close()

	gateway := New(srv.URL, "SECRET_PRODUCTS_TOKEN")

	// Act
	outcome := gateway.Get(context.Background(), "/products/999")

	// Assert
	assert.Equal(t, StatusNotFound, outcome.Status)
	assert.Empty(t, outcome.Body)
}

func TestGateway_Get_ServerErrorIsUnavailable(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gateway := New(srv.URL, "SECRET_PRODUCTS_TOKEN")

	// Act
	outcome := gateway.Get(context.Background(), "/products/1")

	// Assert
	assert.Equal(t, StatusUnavailable, outcome.Status)
}

func TestGateway_Get_ConnectionRefusedIsUnavailable(t *testing.T) {
	// Arrange: o servidor é fechado antes da chamada
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	gateway := New(url, "SECRET_PRODUCTS_TOKEN")

	// Act
	outcome := gateway.Get(context.Background(), "/products/1")

	// Assert
	assert.Equal(t, StatusUnavailable, outcome.Status)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "not_found", StatusNotFound.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
}
