// Package caixa contém a aritmética de conferência do caixa (serviço de domínio,
// sem I/O): soma de sangrias e reforços, dinheiro esperado na gaveta e diferença
// entre o esperado e o contado no fechamento.
package caixa

import (
	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain/entity"
)

// Resultado da conferência em relação ao dinheiro contado.
const (
	OutcomeExact    = "exato"    // diferença zero
	OutcomeSurplus  = "sobra"    // contou-se mais do que o esperado
	OutcomeShortage = "falta"    // contou-se menos do que o esperado
	OutcomePending  = "pendente" // turno ainda aberto, sem contagem física
)

// Report é o relatório de conferência de um turno, derivado sob demanda.
// Nunca é persistido: recalcular evita cache desatualizado.
type Report struct {
	ShiftID          string
	InitialCashFund  decimal.Decimal
	CashSales        decimal.Decimal // apenas vendas em dinheiro afetam a gaveta
	TotalWithdrawals decimal.Decimal
	TotalAdditions   decimal.Decimal
	// ExpectedCash = fundo + vendas em dinheiro + reforços - sangrias.
	ExpectedCash  decimal.Decimal
	TotalSales    decimal.Decimal // todas as formas de pagamento
	SalesByMethod map[entity.PaymentMethod]decimal.Decimal
	// FinalCashAmount e Difference só têm significado após o fechamento.
	FinalCashAmount *decimal.Decimal
	Difference      *decimal.Decimal // contado - esperado
	Outcome         string           // exato | sobra | falta | pendente
}

// BuildReport calcula o relatório de conferência de um turno. Função pura e
// idempotente: pode ser chamada a qualquer momento, inclusive com o turno
// aberto (prévia) ou fechado (conferência final).
//
// ExpectedCash = InitialCashFund + vendas[dinheiro] + reforços - sangrias
// Difference   = FinalCashAmount - ExpectedCash (apenas após o fechamento)
func BuildReport(shift *entity.Shift, salesByMethod map[entity.PaymentMethod]decimal.Decimal) *Report {
	r := &Report{
		ShiftID:         shift.ID,
		InitialCashFund: shift.InitialCashFund,
		SalesByMethod:   make(map[entity.PaymentMethod]decimal.Decimal, len(entity.PaymentMethods)),
	}

	for _, m := range entity.PaymentMethods {
		v := decimal.Zero
		if salesByMethod != nil {
			if got, ok := salesByMethod[m]; ok {
				v = got
			}
		}
		r.SalesByMethod[m] = v
		r.TotalSales = r.TotalSales.Add(v)
	}
	r.CashSales = r.SalesByMethod[entity.PaymentCash]

	for _, op := range shift.Withdrawals {
		r.TotalWithdrawals = r.TotalWithdrawals.Add(op.Amount)
	}
	for _, op := range shift.Additions {
		r.TotalAdditions = r.TotalAdditions.Add(op.Amount)
	}

	r.ExpectedCash = shift.InitialCashFund.
		Add(r.CashSales).
		Add(r.TotalAdditions).
		Sub(r.TotalWithdrawals)

	if shift.Status == entity.ShiftStatusClosed && shift.FinalCashAmount != nil {
		final := *shift.FinalCashAmount
		diff := final.Sub(r.ExpectedCash)
		r.FinalCashAmount = &final
		r.Difference = &diff
		r.Outcome = classify(diff)
	} else {
		r.Outcome = OutcomePending
	}
	return r
}

// classify rotula a diferença pelo sinal; não há arredondamento além dos
// 2 dígitos decimais padrão da moeda.
func classify(diff decimal.Decimal) string {
	switch {
	case diff.IsZero():
		return OutcomeExact
	case diff.IsPositive():
		return OutcomeSurplus
	default:
		return OutcomeShortage
	}
}
