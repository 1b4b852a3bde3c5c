// Package pdf implementa a geração da segunda via de boleto em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Associação + "SEGUNDA VIA DE BOLETO" + nº           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DADOS: vencimento | referência | situação | valor           │
//	│  VEÍCULO PROTEGIDO: marca/modelo/ano, placa, tipo            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LINHA DIGITÁVEL (ou aviso de indisponibilidade)             │
//	│  PIX COPIA E COLA (quando houver e o boleto estiver aberto)  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/application/ports"
	"github.com/jrpvbrasil/portal-api/internal/domain"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 0, Green: 90, Blue: 60}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verificação em tempo de compilação da porta.
var _ ports.BoletoPDFGenerator = (*MarotoSegundaVia)(nil)

// MarotoSegundaVia implementa ports.BoletoPDFGenerator usando Maroto v2.
type MarotoSegundaVia struct {
	associacao string
}

// NewMarotoSegundaVia constrói o gerador. associacao é o nome exibido no cabeçalho.
func NewMarotoSegundaVia(associacao string) *MarotoSegundaVia {
	return &MarotoSegundaVia{associacao: associacao}
}

// GerarSegundaVia renderiza o PDF e devolve seus bytes.
func (g *MarotoSegundaVia) GerarSegundaVia(_ context.Context, boleto dto.BoletoDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Segunda via de boleto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(boleto))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(dadosRow(boleto))
	if len(boleto.Veiculo) > 0 {
		m.AddRows(veiculoRow(boleto.Veiculo[0]))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(linhaDigitavelRows(boleto)...)
	if boleto.Pix != nil && boleto.Pix.CopiaCola != "" && boleto.Pago == domain.PagoNao {
		m.AddRows(pixRows(boleto.Pix.CopiaCola)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da associação (esq) e número do boleto (dir).
func (g *MarotoSegundaVia) headerRow(boleto dto.BoletoDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.associacao, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("SEGUNDA VIA DE BOLETO", props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("BOLETO Nº", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: corPrimaria, Top: 1,
			}),
			text.New("#"+boleto.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// dadosRow: vencimento, referência, situação e valor.
func dadosRow(boleto dto.BoletoDTO) core.Row {
	situacao := "EM ABERTO"
	if boleto.Pago == domain.PagoSim {
		situacao = "PAGO"
	}
	valor := "—"
	if boleto.ValorBoleto != nil {
		valor = "R$ " + boleto.ValorBoleto.StringFixed(2)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DADOS DO BOLETO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(fmt.Sprintf("Vencimento: %s   |   Referência: %s   |   Situação: %s   |   Valor: %s",
				naoVazio(boleto.DataVencimento, "—"),
				naoVazio(boleto.Referente, "—"),
				situacao,
				valor,
			), props.Text{Size: 8, Top: 7, Color: corCinza}),
		),
	)
}

// veiculoRow: veículo protegido vinculado ao boleto.
func veiculoRow(v dto.VeiculoDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEÍCULO PROTEGIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s %s   |   Placa: %s   |   Tipo: %s",
				v.Marca, v.Modelo, v.AnoModelo, v.Placa, naoVazio(v.TipoVeiculo, "—"),
			), props.Text{Size: 8, Top: 7, Color: corCinza}),
		),
	)
}

// linhaDigitavelRows: linha digitável válida ou aviso de indisponibilidade.
func linhaDigitavelRows(boleto dto.BoletoDTO) []core.Row {
	titulo := row.New(7).Add(col.New(12).Add(
		text.New("LINHA DIGITÁVEL PARA PAGAMENTO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
		}),
	))
	conteudo := "Linha digitável não disponível para este boleto."
	estilo := props.Text{Size: 8, Top: 1, Color: corCinza}
	if boleto.DadosPagamento.LinhaDigitavel != nil {
		conteudo = *boleto.DadosPagamento.LinhaDigitavel
		estilo = props.Text{Size: 10, Top: 1, Style: fontstyle.Bold}
	}
	return []core.Row{
		titulo,
		row.New(8).Add(col.New(12).Add(text.New(conteudo, estilo))),
	}
}

// pixRows: código PIX copia-e-cola, quebrado pelo próprio maroto.
func pixRows(copiaCola string) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("PIX COPIA E COLA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(copiaCola, props.Text{Size: 7, Top: 1, Color: corCinza}),
		)),
	}
}

func naoVazio(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
