// Package sga implementa o adaptador HTTP para a API Hinova SGA v2.
//
// A consulta de boletos exige duas chamadas sequenciais:
//
//  1. POST /usuario/autenticar — bearer = token de associação (longa duração),
//     corpo {usuario, senha} → {token_usuario} (curta duração);
//  2. POST /listar/boleto/periodo — bearer = token_usuario, corpo
//     {cpf_associado, data_vencimento_inicial, data_vencimento_final}.
//
// Corpos de erro do upstream vão para o log de diagnóstico e nunca são
// repassados ao chamador; o chamador recebe apenas os erros genéricos de
// domínio.
package sga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jrpvbrasil/portal-api/internal/application/ports"
	"github.com/jrpvbrasil/portal-api/internal/domain"
	"github.com/jrpvbrasil/portal-api/pkg/config"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// Verificação em tempo de compilação de que Client implementa a porta.
var _ ports.SGAClient = (*Client)(nil)

// Client adaptador HTTP da API SGA. Usa net/http da stdlib; não requer SDK.
type Client struct {
	baseURL         string
	tokenAssociacao string
	usuario         string
	senha           string
	httpClient      *http.Client
	log             *logger.Logger
}

// NewClient constrói o adaptador a partir da configuração. O timeout de rede
// vem da config; as chamadas também respeitam o context recebido.
func NewClient(cfg config.SGAConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:         cfg.BaseURL,
		tokenAssociacao: cfg.TokenAssociacao,
		usuario:         cfg.Usuario,
		senha:           cfg.Senha,
		httpClient:      &http.Client{Timeout: cfg.Timeout()},
		log:             log,
	}
}

// ── Estruturas do protocolo SGA ───────────────────────────────────────────────

type autenticarRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

type autenticarResponse struct {
	TokenUsuario string `json:"token_usuario"`
}

type listarPeriodoRequest struct {
	CPFAssociado          string `json:"cpf_associado"`
	DataVencimentoInicial string `json:"data_vencimento_inicial"`
	DataVencimentoFinal   string `json:"data_vencimento_final"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// AutenticarUsuario executa a primeira etapa da troca de tokens.
func (c *Client) AutenticarUsuario(ctx context.Context) (string, error) {
	body, status, err := c.post(ctx, "/usuario/autenticar", c.tokenAssociacao, autenticarRequest{
		Usuario: c.usuario,
		Senha:   c.senha,
	})
	if err != nil {
		c.log.Error().Err(err).Msg("SGA: falha de rede na autenticação")
		return "", domain.ErrFalhaAutenticacao
	}
	if status != http.StatusOK {
		c.log.Error().Int("status", status).Str("corpo", string(body)).Msg("SGA: autenticação recusada")
		return "", domain.ErrFalhaAutenticacao
	}

	var out autenticarResponse
	if err := json.Unmarshal(body, &out); err != nil || out.TokenUsuario == "" {
		c.log.Error().Err(err).Msg("SGA: resposta de autenticação sem token_usuario")
		return "", domain.ErrFalhaAutenticacao
	}
	return out.TokenUsuario, nil
}

// ListarBoletosPeriodo executa a segunda etapa com o token de usuário.
func (c *Client) ListarBoletosPeriodo(ctx context.Context, tokenUsuario, cpfAssociado string, periodo domain.Periodo) ([]ports.RegistroBoletoSGA, error) {
	body, status, err := c.post(ctx, "/listar/boleto/periodo", tokenUsuario, listarPeriodoRequest{
		CPFAssociado:          cpfAssociado,
		DataVencimentoInicial: periodo.InicioStr(),
		DataVencimentoFinal:   periodo.FimStr(),
	})
	if err != nil {
		c.log.Error().Err(err).Msg("SGA: falha de rede na listagem de boletos")
		return nil, domain.ErrFalhaConsulta
	}
	if status != http.StatusOK {
		// O corpo cru fica só no log; o chamador recebe a mensagem genérica.
		c.log.Error().
			Int("status", status).
			Str("cpf", logger.MascararCPF(cpfAssociado)).
			Str("corpo", string(body)).
			Msg("SGA: erro na listagem de boletos")
		return nil, domain.ErrFalhaConsulta
	}

	var registros []ports.RegistroBoletoSGA
	if err := json.Unmarshal(body, &registros); err != nil {
		c.log.Error().Err(err).Msg("SGA: corpo de listagem não é um array de boletos")
		return nil, domain.ErrFalhaConsulta
	}
	return registros, nil
}

// post envia um POST JSON com bearer e devolve corpo + status. O corpo é lido
// com limite de 1 MiB; respostas maiores são truncadas.
func (c *Client) post(ctx context.Context, rota, bearer string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("sga: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+rota, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("sga: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("sga: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, 0, fmt.Errorf("sga: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("sga: ler resposta: %w", err)
	}
	return body, resp.StatusCode, nil
}
