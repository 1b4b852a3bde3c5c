package enhancer

import (
	"fmt"
	"sync"
	"time"

	"github.com/jrpvbrasil/portal-api/internal/application/dto"
)

// Rótulos dos botões de cópia e da confirmação transitória.
const (
	rotuloCopiarPix = "📱 Copiar Código PIX"
	rotuloCopiado   = "✓ Copiado!"

	// tempo que a confirmação fica visível antes do rótulo reverter
	duracaoConfirmacao = 2 * time.Second
)

// Clipboard abstrai a área de transferência do ambiente que hospeda os cards.
type Clipboard interface {
	Copiar(texto string) error
}

// Widget é um bloco de informação injetado em um card.
type Widget struct {
	Tipo   TipoWidget
	Titulo string
	Linhas []string
	Botao  *BotaoCopiar // nil quando o widget não tem ação de cópia
}

// NovoWidgetVeiculo monta o widget com o primeiro veículo protegido do boleto.
func NovoWidgetVeiculo(v dto.VeiculoDTO) *Widget {
	return &Widget{
		Tipo:   WidgetVeiculo,
		Titulo: "🚗 Veículo Protegido",
		Linhas: []string{
			fmt.Sprintf("%s %s %s", v.Marca, v.Modelo, v.AnoModelo),
			fmt.Sprintf("Placa: %s | Tipo: %s", v.Placa, v.TipoVeiculo),
		},
	}
}

// NovoWidgetPix monta o widget do código PIX copia-e-cola.
func NovoWidgetPix(copiaCola string) *Widget {
	return &Widget{
		Tipo:   WidgetPix,
		Titulo: "💚 PIX Copia e Cola",
		Linhas: []string{copiaCola},
		Botao:  NewBotaoCopiar(copiaCola, rotuloCopiarPix),
	}
}

// BotaoCopiar copia um valor para a área de transferência e exibe uma
// confirmação transitória: o rótulo vira "✓ Copiado!" por ~2 segundos e
// depois reverte.
type BotaoCopiar struct {
	mu      sync.Mutex
	valor   string
	rotulo  string
	atual   string
	duracao time.Duration
	timer   *time.Timer
}

// NewBotaoCopiar constrói o botão com o rótulo de repouso informado.
func NewBotaoCopiar(valor, rotulo string) *BotaoCopiar {
	return &BotaoCopiar{valor: valor, rotulo: rotulo, atual: rotulo, duracao: duracaoConfirmacao}
}

// ComDuracao ajusta a duração da confirmação (usado nos testes).
func (b *BotaoCopiar) ComDuracao(d time.Duration) *BotaoCopiar {
	b.duracao = d
	return b
}

// Clicar copia o valor e dispara a confirmação transitória. Cliques em
// sequência reiniciam o tempo de reversão.
func (b *BotaoCopiar) Clicar(clip Clipboard) error {
	if err := clip.Copiar(b.valor); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.atual = rotuloCopiado
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.duracao, func() {
		b.mu.Lock()
		b.atual = b.rotulo
		b.mu.Unlock()
	})
	return nil
}

// Rotulo devolve o rótulo atualmente exibido.
func (b *BotaoCopiar) Rotulo() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.atual
}

// Valor devolve o texto que o botão copia.
func (b *BotaoCopiar) Valor() string {
	return b.valor
}
