package enhancer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
	"github.com/jrpvbrasil/portal-api/internal/enhancer"
)

type clipboardFake struct {
	copiado string
	erro    error
}

func (c *clipboardFake) Copiar(texto string) error {
	if c.erro != nil {
		return c.erro
	}
	c.copiado = texto
	return nil
}

func TestNovoWidgetVeiculo_MontaAsLinhas(t *testing.T) {
	w := enhancer.NovoWidgetVeiculo(dto.VeiculoDTO{
		Marca: "VW", Modelo: "Gol", AnoModelo: "2020", Placa: "ABC1D23", TipoVeiculo: "Carro",
	})

	assert.Equal(t, enhancer.WidgetVeiculo, w.Tipo)
	require.Len(t, w.Linhas, 2)
	assert.Equal(t, "VW Gol 2020", w.Linhas[0])
	assert.Equal(t, "Placa: ABC1D23 | Tipo: Carro", w.Linhas[1])
	assert.Nil(t, w.Botao)
}

func TestNovoWidgetPix_CarregaOBotaoDeCopia(t *testing.T) {
	w := enhancer.NovoWidgetPix("00020126...")

	assert.Equal(t, enhancer.WidgetPix, w.Tipo)
	require.NotNil(t, w.Botao)
	assert.Equal(t, "00020126...", w.Botao.Valor())
}

// O clique copia o valor, mostra a confirmação e reverte depois da janela.
func TestBotaoCopiar_ConfirmacaoTransitoria(t *testing.T) {
	clip := &clipboardFake{}
	botao := enhancer.NewBotaoCopiar("00020126...", "📱 Copiar Código PIX").ComDuracao(30 * time.Millisecond)

	require.NoError(t, botao.Clicar(clip))

	assert.Equal(t, "00020126...", clip.copiado)
	assert.Equal(t, "✓ Copiado!", botao.Rotulo())

	assert.Eventually(t, func() bool {
		return botao.Rotulo() == "📱 Copiar Código PIX"
	}, time.Second, 5*time.Millisecond, "o rótulo deve reverter após a confirmação")
}

// Cliques em sequência reiniciam a janela de confirmação sem corromper o rótulo.
func TestBotaoCopiar_CliquesSeguidosReiniciamAJanela(t *testing.T) {
	clip := &clipboardFake{}
	botao := enhancer.NewBotaoCopiar("x", "Copiar").ComDuracao(40 * time.Millisecond)

	require.NoError(t, botao.Clicar(clip))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, botao.Clicar(clip))
	time.Sleep(25 * time.Millisecond)

	// a primeira janela já venceu, mas o segundo clique a reiniciou
	assert.Equal(t, "✓ Copiado!", botao.Rotulo())

	assert.Eventually(t, func() bool {
		return botao.Rotulo() == "Copiar"
	}, time.Second, 5*time.Millisecond)
}

// Falha ao copiar não altera o rótulo.
func TestBotaoCopiar_ErroDeCopiaNaoMudaORotulo(t *testing.T) {
	clip := &clipboardFake{erro: errors.New("área de transferência indisponível")}
	botao := enhancer.NewBotaoCopiar("x", "Copiar")

	err := botao.Clicar(clip)

	assert.Error(t, err)
	assert.Equal(t, "Copiar", botao.Rotulo())
}
