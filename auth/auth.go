package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authenticator abstrai a verificação do header Authorization
type Authenticator interface {
	Authenticate(header string) bool
}

// BearerToken implementa Authenticator com um token estático por serviço
type BearerToken struct {
	expected []byte
}

// NewBearerToken cria uma nova instância de BearerToken
func NewBearerToken(token string) *BearerToken {
	return &BearerToken{
		expected: []byte("Bearer " + token),
	}
}

// Authenticate compara o header com o valor esperado em tempo constante
func (b *BearerToken) Authenticate(header string) bool {
	return subtle.ConstantTimeCompare([]byte(header), b.expected) == 1
}

// Middleware rejeita com 401 qualquer requisição sem o token do serviço
func Middleware(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Authenticate(c.GetHeader("Authorization")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
