package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ConsultarBoletosRequest corpo da consulta de boletos. O CPF é aceito em
// qualquer um dos dois campos (formatos legados do frontend). As datas são
// opcionais, em dd/mm/aaaa.
type ConsultarBoletosRequest struct {
	CPF                   string `json:"cpf"`
	CPFAssociado          string `json:"cpf_associado"`
	DataVencimentoInicial string `json:"data_vencimento_inicial"`
	DataVencimentoFinal   string `json:"data_vencimento_final"`
}

// CPFInformado devolve o CPF enviado, priorizando o campo "cpf".
func (r ConsultarBoletosRequest) CPFInformado() string {
	if r.CPF != "" {
		return r.CPF
	}
	return r.CPFAssociado
}

// SegundaViaRequest corpo da geração de segunda via em PDF.
type SegundaViaRequest struct {
	CPF          string `json:"cpf"`
	CodigoBoleto string `json:"codigo_boleto"`
}

// ConsultaSucesso envelope de sucesso: {success:true, data:[...]}.
type ConsultaSucesso struct {
	Success bool        `json:"success"`
	Data    []BoletoDTO `json:"data"`
}

// RespostaErro envelope uniforme de erro: {success:false, error}.
type RespostaErro struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BoletoDTO boleto normalizado para o frontend. Os campos crus do SGA que o
// portal já lê são preservados ao lado dos campos derivados.
type BoletoDTO struct {
	ID             string            `json:"_id"`
	CodigoBoleto   json.Number       `json:"codigo_boleto,omitempty"`
	NossoNumero    string            `json:"nosso_numero,omitempty"`
	SituacaoBoleto string            `json:"situacao_boleto,omitempty"`
	ValorBoleto    *decimal.Decimal  `json:"valor_boleto,omitempty"`
	DataVencimento string            `json:"data_vencimento,omitempty"`
	MesReferente   string            `json:"mes_referente,omitempty"`
	Pago           string            `json:"pago"`
	Referente      string            `json:"referente"`
	LinhaDigitavel string            `json:"linha_digitavel,omitempty"`
	DadosPagamento DadosPagamentoDTO `json:"dados_pagamento"`
	Pix            *PixDTO           `json:"pix"`
	Veiculo        []VeiculoDTO      `json:"veiculo"`
}

// DadosPagamentoDTO estrutura aninhada que o frontend usa para exibir a linha
// digitável. LinhaDigitavel é null quando o SGA devolveu a frase sentinela de
// "não foi possível gerar".
type DadosPagamentoDTO struct {
	LinhaDigitavel *string `json:"linha_digitavel"`
	CodigoBarras   *string `json:"codigo_barras"`
}

// PixDTO código PIX copia-e-cola do boleto.
type PixDTO struct {
	CopiaCola string `json:"copia_cola"`
}

// VeiculoDTO veículo protegido vinculado ao boleto.
type VeiculoDTO struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	AnoModelo   string `json:"ano_modelo"`
	Placa       string `json:"placa"`
	TipoVeiculo string `json:"tipo_veiculo"`
}
