// Package portal implementa o fetcher que o enhancer usa contra o próprio
// endpoint do portal (POST /api/jrpv/boletos/consultar).
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/enhancer"
)

// Verificação em tempo de compilação da porta do enhancer.
var _ enhancer.ConsultaFetcher = (*Client)(nil)

// Client fetcher HTTP do proxy de boletos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o fetcher. baseURL sem barra final (ex: http://localhost:3000).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ConsultarBoletos consulta os boletos do CPF pelo endpoint do portal.
func (c *Client) ConsultarBoletos(ctx context.Context, cpf string) ([]dto.BoletoDTO, error) {
	raw, err := json.Marshal(dto.ConsultarBoletosRequest{CPF: cpf})
	if err != nil {
		return nil, fmt.Errorf("portal: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/jrpv/boletos/consultar", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("portal: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("portal: ler resposta: %w", err)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    []dto.BoletoDTO `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("portal: deserializar resposta: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("portal: consulta recusada (HTTP %d): %s", resp.StatusCode, envelope.Error)
	}
	return envelope.Data, nil
}
