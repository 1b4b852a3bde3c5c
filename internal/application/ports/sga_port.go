package ports

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jrpvbrasil/portal-api/internal/domain"
)

// RegistroBoletoSGA registro cru devolvido por POST /listar/boleto/periodo.
// CodigoBoleto chega como número ou string conforme a versão do SGA, por isso
// json.Number. Campos ausentes ficam com o zero value e são tratados na
// normalização, nunca derrubam a consulta.
type RegistroBoletoSGA struct {
	CodigoBoleto   json.Number      `json:"codigo_boleto"`
	NossoNumero    string           `json:"nosso_numero"`
	SituacaoBoleto string           `json:"situacao_boleto"`
	ValorBoleto    *decimal.Decimal `json:"valor_boleto"`
	DataVencimento string           `json:"data_vencimento"`
	MesReferente   string           `json:"mes_referente"`
	LinhaDigitavel string           `json:"linha_digitavel"`
	Pix            *PixSGA          `json:"pix"`
	Veiculo        []VeiculoSGA     `json:"veiculo"`
}

// PixSGA bloco PIX do registro cru.
type PixSGA struct {
	CopiaCola string `json:"copia_cola"`
}

// VeiculoSGA veículo vinculado ao boleto no registro cru.
type VeiculoSGA struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	AnoModelo   string `json:"ano_modelo"`
	Placa       string `json:"placa"`
	TipoVeiculo string `json:"tipo_veiculo"`
}

// SGAClient porta de saída para a API Hinova SGA v2. A implementação concreta
// usa HTTP; para testes injeta-se um fake.
type SGAClient interface {
	// AutenticarUsuario troca o token de associação + usuário/senha fixos por
	// um token de usuário de curta duração. Sem retry: uma única chamada.
	AutenticarUsuario(ctx context.Context) (string, error)

	// ListarBoletosPeriodo lista os boletos do associado dentro do período já
	// resolvido (garantidamente <= 365 dias). cpfAssociado deve conter apenas
	// dígitos.
	ListarBoletosPeriodo(ctx context.Context, tokenUsuario, cpfAssociado string, periodo domain.Periodo) ([]RegistroBoletoSGA, error)
}
