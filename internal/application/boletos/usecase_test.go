package boletos_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrpvbrasil/portal-api/internal/application/boletos"
	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/application/ports"
	"github.com/jrpvbrasil/portal-api/internal/domain"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake da porta SGA
// ──────────────────────────────────────────────────────────────────────────────

type sgaFake struct {
	erroAuth  error
	erroLista error
	registros []ports.RegistroBoletoSGA

	chamadasAuth  int
	chamadasLista int
	cpfRecebido   string
	tokenRecebido string
	periodo       domain.Periodo
}

func (f *sgaFake) AutenticarUsuario(_ context.Context) (string, error) {
	f.chamadasAuth++
	if f.erroAuth != nil {
		return "", f.erroAuth
	}
	return "T1", nil
}

func (f *sgaFake) ListarBoletosPeriodo(_ context.Context, token, cpf string, p domain.Periodo) ([]ports.RegistroBoletoSGA, error) {
	f.chamadasLista++
	f.tokenRecebido = token
	f.cpfRecebido = cpf
	f.periodo = p
	if f.erroLista != nil {
		return nil, f.erroLista
	}
	return f.registros, nil
}

func logTeste() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func usecaseTeste(fake *sgaFake) *boletos.ConsultarUseCase {
	agora := func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return boletos.NewConsultarUseCaseComRelogio(fake, logTeste(), agora)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação de entrada e falhas upstream
// ──────────────────────────────────────────────────────────────────────────────

func TestConsultar_SemCPFRetornaErroSemChamarSGA(t *testing.T) {
	fake := &sgaFake{}
	uc := usecaseTeste(fake)

	_, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{})

	assert.ErrorIs(t, err, domain.ErrCPFObrigatorio)
	assert.Zero(t, fake.chamadasAuth, "sem CPF não deve haver chamada de autenticação")
}

func TestConsultar_FalhaDeAutenticacaoNaoChamaListagem(t *testing.T) {
	fake := &sgaFake{erroAuth: domain.ErrFalhaAutenticacao}
	uc := usecaseTeste(fake)

	_, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "123.456.789-00"})

	assert.ErrorIs(t, err, domain.ErrFalhaAutenticacao)
	assert.Zero(t, fake.chamadasLista, "a listagem não deve ser tentada após falha de autenticação")
}

func TestConsultar_FalhaDeListagemPropagaErro(t *testing.T) {
	fake := &sgaFake{erroLista: domain.ErrFalhaConsulta}
	uc := usecaseTeste(fake)

	_, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "123.456.789-00"})

	assert.ErrorIs(t, err, domain.ErrFalhaConsulta)
}

func TestConsultar_AceitaCPFNoCampoAlternativo(t *testing.T) {
	fake := &sgaFake{}
	uc := usecaseTeste(fake)

	_, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPFAssociado: "987.654.321-00"})

	require.NoError(t, err)
	assert.Equal(t, "98765432100", fake.cpfRecebido, "o CPF deve chegar ao SGA só com dígitos")
}

func TestConsultar_RepassaTokenEPeriodoAoSGA(t *testing.T) {
	fake := &sgaFake{}
	uc := usecaseTeste(fake)

	_, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{
		CPF:                   "12345678900",
		DataVencimentoInicial: "01/01/2024",
		DataVencimentoFinal:   "01/03/2025",
	})

	require.NoError(t, err)
	assert.Equal(t, "T1", fake.tokenRecebido)
	assert.Equal(t, "01/01/2024", fake.periodo.InicioStr(), "início do chamador preservado")
	assert.Equal(t, "30/12/2024", fake.periodo.FimStr(), "período acima de 365 dias recortado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalização
// ──────────────────────────────────────────────────────────────────────────────

// Exemplo de ponta a ponta: boleto aberto com linha digitável sentinela,
// PIX e veículo.
func TestConsultar_NormalizaBoletoAbertoComSentinela(t *testing.T) {
	fake := &sgaFake{registros: []ports.RegistroBoletoSGA{{
		CodigoBoleto:   json.Number("77"),
		SituacaoBoleto: "ABERTO",
		LinhaDigitavel: "Não foi possível gerar a linha digitável",
		Pix:            &ports.PixSGA{CopiaCola: "00020126..."},
		Veiculo: []ports.VeiculoSGA{{
			Marca: "VW", Modelo: "Gol", AnoModelo: "2020", Placa: "ABC1D23", TipoVeiculo: "Carro",
		}},
	}}}
	uc := usecaseTeste(fake)

	data, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "123.456.789-00"})
	require.NoError(t, err)
	require.Len(t, data, 1)

	b := data[0]
	assert.Equal(t, "77", b.ID)
	assert.Equal(t, "N", b.Pago)
	assert.Nil(t, b.DadosPagamento.LinhaDigitavel, "sentinela deve virar null em dados_pagamento")
	assert.Equal(t, "Não foi possível gerar a linha digitável", b.LinhaDigitavel, "o campo cru é preservado")
	assert.Nil(t, b.DadosPagamento.CodigoBarras)
	require.NotNil(t, b.Pix)
	assert.Equal(t, "00020126...", b.Pix.CopiaCola)
	require.Len(t, b.Veiculo, 1)
	assert.Equal(t, "VW", b.Veiculo[0].Marca)
}

func TestConsultar_NormalizaBoletoBaixadoComLinhaValida(t *testing.T) {
	fake := &sgaFake{registros: []ports.RegistroBoletoSGA{{
		CodigoBoleto:   json.Number("88"),
		SituacaoBoleto: "BAIXADO",
		LinhaDigitavel: "34191.79001 01043.510047 91020.150008 6 96610000015000",
		MesReferente:   "06/2025",
	}}}
	uc := usecaseTeste(fake)

	data, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "12345678900"})
	require.NoError(t, err)
	require.Len(t, data, 1)

	b := data[0]
	assert.Equal(t, "S", b.Pago)
	require.NotNil(t, b.DadosPagamento.LinhaDigitavel)
	assert.Equal(t, b.LinhaDigitavel, *b.DadosPagamento.LinhaDigitavel)
	assert.Equal(t, "06/2025", b.Referente)
}

func TestConsultar_DefaultsDeCamposAusentes(t *testing.T) {
	fake := &sgaFake{registros: []ports.RegistroBoletoSGA{{
		NossoNumero:    "9001234",
		SituacaoBoleto: "ABERTO",
	}}}
	uc := usecaseTeste(fake)

	data, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "12345678900"})
	require.NoError(t, err)
	require.Len(t, data, 1)

	b := data[0]
	assert.Equal(t, "9001234", b.ID, "sem codigo_boleto o nosso_numero vira o identificador")
	assert.Nil(t, b.Pix, "pix ausente vira null")
	assert.NotNil(t, b.Veiculo, "veiculo ausente vira lista vazia, não null")
	assert.Empty(t, b.Veiculo)
	assert.Nil(t, b.DadosPagamento.LinhaDigitavel, "linha vazia é inválida")
	assert.Equal(t, "", b.Referente)
}

func TestConsultar_ListaVaziaRetornaSliceVazio(t *testing.T) {
	fake := &sgaFake{}
	uc := usecaseTeste(fake)

	data, err := uc.Consultar(context.Background(), dto.ConsultarBoletosRequest{CPF: "12345678900"})
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}
