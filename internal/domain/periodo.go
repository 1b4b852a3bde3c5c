package domain

import (
	"fmt"
	"time"
)

// O SGA limita a consulta de boletos por período a 365 dias. Períodos maiores
// são recortados mantendo a data inicial do chamador.
const maxDiasPeriodo = 365

// FormatoData é o formato de datas da API SGA (dd/mm/aaaa).
const FormatoData = "02/01/2006"

// Periodo é a janela de vencimento enviada ao SGA, já garantidamente
// dentro do limite de 365 dias.
type Periodo struct {
	Inicio time.Time
	Fim    time.Time
}

// InicioStr devolve a data inicial em dd/mm/aaaa.
func (p Periodo) InicioStr() string { return p.Inicio.Format(FormatoData) }

// FimStr devolve a data final em dd/mm/aaaa.
func (p Periodo) FimStr() string { return p.Fim.Format(FormatoData) }

// ParseData interpreta uma data dd/mm/aaaa.
func ParseData(s string) (time.Time, error) {
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrPeriodoInvalido, s)
	}
	return t, nil
}

// ResolverPeriodo decide a janela de vencimento efetiva da consulta.
//
// Se o chamador informou as duas datas, valida o intervalo: acima de 365 dias
// o fim é recortado para início + 364 dias (intervalo inclusivo de 365 dias),
// preservando o início. Sem datas, aplica a janela padrão de ~12 meses:
// de um mês atrás até onze meses à frente de agora.
func ResolverPeriodo(inicial, final string, agora time.Time) (Periodo, error) {
	if inicial != "" && final != "" {
		inicio, err := ParseData(inicial)
		if err != nil {
			return Periodo{}, err
		}
		fim, err := ParseData(final)
		if err != nil {
			return Periodo{}, err
		}
		if fim.Sub(inicio) > maxDiasPeriodo*24*time.Hour {
			fim = inicio.AddDate(0, 0, maxDiasPeriodo-1)
		}
		return Periodo{Inicio: inicio, Fim: fim}, nil
	}

	// Janela padrão: um mês atrás até onze meses à frente.
	return Periodo{
		Inicio: agora.AddDate(0, -1, 0),
		Fim:    agora.AddDate(0, 11, 0),
	}, nil
}
