package boletos

import (
	"context"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/application/ports"
	"github.com/jrpvbrasil/portal-api/internal/domain"
)

// SegundaViaUseCase gera o PDF de segunda via de um boleto específico.
// Reaproveita o fluxo de consulta (não há persistência local): consulta o
// período padrão e localiza o boleto pelo código.
type SegundaViaUseCase struct {
	consulta *ConsultarUseCase
	pdf      ports.BoletoPDFGenerator
}

// NewSegundaViaUseCase constrói o caso de uso de segunda via.
func NewSegundaViaUseCase(consulta *ConsultarUseCase, pdf ports.BoletoPDFGenerator) *SegundaViaUseCase {
	return &SegundaViaUseCase{consulta: consulta, pdf: pdf}
}

// Gerar consulta os boletos do CPF, localiza o código pedido e renderiza o PDF.
func (uc *SegundaViaUseCase) Gerar(ctx context.Context, in dto.SegundaViaRequest) ([]byte, error) {
	alvo := domain.SomenteDigitos(in.CodigoBoleto)
	if alvo == "" {
		return nil, domain.ErrBoletoNaoEncontrado
	}

	docs, err := uc.consulta.Consultar(ctx, dto.ConsultarBoletosRequest{CPF: in.CPF})
	if err != nil {
		return nil, err
	}

	for _, b := range docs {
		if domain.SomenteDigitos(b.ID) == alvo || domain.SomenteDigitos(b.CodigoBoleto.String()) == alvo {
			return uc.pdf.GerarSegundaVia(ctx, b)
		}
	}
	return nil, domain.ErrBoletoNaoEncontrado
}
