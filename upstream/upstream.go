package upstream

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// callTimeout limita cada chamada upstream; não há retry em nenhuma camada
const callTimeout = 3 * time.Second

// Status representa o resultado de uma chamada a um serviço upstream
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusUnavailable
)

// String descreve o status para logs e spans
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not_found"
	default:
		return "unavailable"
	}
}

// Outcome é o contrato de três vias do gateway: Success carrega o body
// bruto; NotFound e Unavailable não carregam nada. Queda do serviço,
// timeout e erro 5xx são colapsados de propósito em Unavailable.
type Outcome struct {
	Status Status
	Body   []byte
}

// Caller abstrai o gateway para os serviços que validam referências remotas
type Caller interface {
	Get(ctx context.Context, path string) Outcome
}

// Gateway implementa Caller com um client resty autenticado por bearer token
type Gateway struct {
	client *resty.Client
	tracer trace.Tracer
}

// New cria um Gateway apontando para a base URL do serviço upstream
func New(baseURL, token string) *Gateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(callTimeout)

	return &Gateway{
		client: client,
		tracer: otel.Tracer("upstream-gateway"),
	}
}

// Get faz uma leitura síncrona no serviço upstream e mapeia qualquer
// falha para um dos três status do contrato
func (g *Gateway) Get(ctx context.Context, path string) Outcome {
	ctx, span := g.tracer.Start(ctx, "upstream.get")
	defer span.End()

	requestID := uuid.New().String()
	span.SetAttributes(
		attribute.String("upstream.path", path),
		attribute.String("request_id", requestID),
	)

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		Get(path)

	if err != nil {
		// Erro de rede ou timeout: upstream indisponível
		span.RecordError(err)
		span.SetAttributes(attribute.String("upstream.outcome", StatusUnavailable.String()))
		log.Printf("❌ Upstream call failed | path=%s request_id=%s : %v", path, requestID, err)
		return Outcome{Status: StatusUnavailable}
	}

	var outcome Outcome
	switch resp.StatusCode() {
	case http.StatusOK:
		outcome = Outcome{Status: StatusSuccess, Body: resp.Body()}
	case http.StatusNotFound:
		outcome = Outcome{Status: StatusNotFound}
	default:
		log.Printf("❌ Upstream returned %d | path=%s request_id=%s", resp.StatusCode(), path, requestID)
		outcome = Outcome{Status: StatusUnavailable}
	}

	span.SetAttributes(
		attribute.Int("upstream.status_code", resp.StatusCode()),
		attribute.String("upstream.outcome", outcome.Status.String()),
	)
	return outcome
}
