package boletos

import (
	"context"
	"strings"
	"time"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/application/ports"
	"github.com/jrpvbrasil/portal-api/internal/domain"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

// ConsultarUseCase consulta de boletos em duas etapas contra o SGA:
// autentica o usuário da associação, lista os boletos do período e normaliza
// o resultado para o formato que o portal espera.
type ConsultarUseCase struct {
	sga   ports.SGAClient
	log   *logger.Logger
	agora func() time.Time
}

// NewConsultarUseCase constrói o caso de uso de consulta.
func NewConsultarUseCase(sga ports.SGAClient, log *logger.Logger) *ConsultarUseCase {
	return &ConsultarUseCase{sga: sga, log: log, agora: time.Now}
}

// NewConsultarUseCaseComRelogio permite fixar o "agora" nos testes da janela padrão.
func NewConsultarUseCaseComRelogio(sga ports.SGAClient, log *logger.Logger, agora func() time.Time) *ConsultarUseCase {
	return &ConsultarUseCase{sga: sga, log: log, agora: agora}
}

// Consultar executa o fluxo completo: valida o CPF, autentica no SGA, resolve
// a janela de vencimento (limite de 365 dias do upstream) e lista/normaliza os
// boletos. Qualquer falha interrompe o fluxo; não há resultado parcial.
func (uc *ConsultarUseCase) Consultar(ctx context.Context, in dto.ConsultarBoletosRequest) ([]dto.BoletoDTO, error) {
	cpf := strings.TrimSpace(in.CPFInformado())
	if cpf == "" {
		return nil, domain.ErrCPFObrigatorio
	}
	cpfLimpo := domain.SomenteDigitos(cpf)

	token, err := uc.sga.AutenticarUsuario(ctx)
	if err != nil {
		return nil, err
	}

	periodo, err := domain.ResolverPeriodo(in.DataVencimentoInicial, in.DataVencimentoFinal, uc.agora())
	if err != nil {
		return nil, err
	}

	registros, err := uc.sga.ListarBoletosPeriodo(ctx, token, cpfLimpo, periodo)
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("cpf", logger.MascararCPF(cpfLimpo)).
		Str("inicio", periodo.InicioStr()).
		Str("fim", periodo.FimStr()).
		Int("boletos", len(registros)).
		Msg("consulta de boletos concluída")

	resultado := make([]dto.BoletoDTO, 0, len(registros))
	for _, r := range registros {
		resultado = append(resultado, normalizar(r))
	}
	return resultado, nil
}

// normalizar converte o registro cru do SGA para o formato do portal:
// deriva a flag "pago", valida a linha digitável, aplica defaults em pix e
// veículo e define um identificador estável.
func normalizar(r ports.RegistroBoletoSGA) dto.BoletoDTO {
	var linha *string
	if domain.LinhaDigitavelValida(r.LinhaDigitavel) {
		v := r.LinhaDigitavel
		linha = &v
	}

	id := r.CodigoBoleto.String()
	if id == "" {
		// Sem código de boleto, o nosso_numero interno serve de identificador.
		id = r.NossoNumero
	}

	var pix *dto.PixDTO
	if r.Pix != nil {
		pix = &dto.PixDTO{CopiaCola: r.Pix.CopiaCola}
	}

	veiculos := make([]dto.VeiculoDTO, 0, len(r.Veiculo))
	for _, v := range r.Veiculo {
		veiculos = append(veiculos, dto.VeiculoDTO{
			Marca:       v.Marca,
			Modelo:      v.Modelo,
			AnoModelo:   v.AnoModelo,
			Placa:       v.Placa,
			TipoVeiculo: v.TipoVeiculo,
		})
	}

	return dto.BoletoDTO{
		ID:             id,
		CodigoBoleto:   r.CodigoBoleto,
		NossoNumero:    r.NossoNumero,
		SituacaoBoleto: r.SituacaoBoleto,
		ValorBoleto:    r.ValorBoleto,
		DataVencimento: r.DataVencimento,
		MesReferente:   r.MesReferente,
		Pago:           domain.FlagPago(r.SituacaoBoleto),
		Referente:      r.MesReferente,
		LinhaDigitavel: r.LinhaDigitavel,
		DadosPagamento: dto.DadosPagamentoDTO{LinhaDigitavel: linha, CodigoBarras: nil},
		Pix:            pix,
		Veiculo:        veiculos,
	}
}
