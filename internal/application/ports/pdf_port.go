package ports

import (
	"context"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
)

// BoletoPDFGenerator porta de saída para a geração da segunda via em PDF.
type BoletoPDFGenerator interface {
	// GerarSegundaVia renderiza o resumo imprimível do boleto e devolve os
	// bytes do PDF.
	GerarSegundaVia(ctx context.Context, boleto dto.BoletoDTO) ([]byte, error)
}
