package caixa_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/caixa"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Lei de conservação do caixa:
//
//	esperado = fundo + vendas[dinheiro] + reforços - sangrias
//	diferença = contado - esperado
//
// Esses testes são o canário da conferência: se alguém mexer na aritmética
// do relatório, o fechamento do caixa passa a acusar sobra ou falta que não
// existe — e o operador leva a culpa.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func openShift(fund string) *entity.Shift {
	return &entity.Shift{
		ID:              "turno-1",
		OperatorID:      "op-1",
		OperatorName:    "Maria",
		StartTime:       time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		InitialCashFund: dec(fund),
		Status:          entity.ShiftStatusOpen,
	}
}

func withOps(s *entity.Shift, withdrawals, additions []string) *entity.Shift {
	for i, a := range withdrawals {
		s.Withdrawals = append(s.Withdrawals, &entity.CashOperation{
			ID: "s" + string(rune('0'+i)), ShiftID: s.ID,
			Type: entity.OperationTypeWithdrawal, Amount: dec(a), Reason: "sangria",
		})
	}
	for i, a := range additions {
		s.Additions = append(s.Additions, &entity.CashOperation{
			ID: "r" + string(rune('0'+i)), ShiftID: s.ID,
			Type: entity.OperationTypeAddition, Amount: dec(a), Reason: "reforço",
		})
	}
	return s
}

func closeShift(s *entity.Shift, counted string) *entity.Shift {
	end := s.StartTime.Add(8 * time.Hour)
	final := dec(counted)
	s.EndTime = &end
	s.FinalCashAmount = &final
	s.Status = entity.ShiftStatusClosed
	return s
}

// Cenário de referência: fundo 100, reforço 50, sangria 30, vendas em
// dinheiro 200 → esperado 320,00.
func TestBuildReport_EsperadoConferido(t *testing.T) {
	shift := withOps(openShift("100.00"), []string{"30.00"}, []string{"50.00"})
	sales := map[entity.PaymentMethod]decimal.Decimal{
		entity.PaymentCash: dec("200.00"),
	}

	r := caixa.BuildReport(shift, sales)

	assert.True(t, dec("320.00").Equal(r.ExpectedCash),
		"esperado = 100 + 200 + 50 - 30 = 320,00; veio %s", r.ExpectedCash)
	assert.True(t, dec("30.00").Equal(r.TotalWithdrawals))
	assert.True(t, dec("50.00").Equal(r.TotalAdditions))
	assert.True(t, dec("200.00").Equal(r.CashSales))
	assert.Equal(t, caixa.OutcomePending, r.Outcome, "turno aberto não tem diferença")
	assert.Nil(t, r.Difference)
}

// Só vendas em dinheiro afetam a gaveta: cartão, PIX e cortesia entram no
// total de vendas mas não no dinheiro esperado.
func TestBuildReport_SoDinheiroAfetaGaveta(t *testing.T) {
	shift := openShift("100.00")
	sales := map[entity.PaymentMethod]decimal.Decimal{
		entity.PaymentCash:     dec("150.00"),
		entity.PaymentDebit:    dec("80.00"),
		entity.PaymentCredit:   dec("120.00"),
		entity.PaymentPix:      dec("45.50"),
		entity.PaymentCourtesy: dec("10.00"),
	}

	r := caixa.BuildReport(shift, sales)

	assert.True(t, dec("250.00").Equal(r.ExpectedCash), "100 + 150, cartão/PIX fora")
	assert.True(t, dec("405.50").Equal(r.TotalSales))
	assert.True(t, dec("80.00").Equal(r.SalesByMethod[entity.PaymentDebit]))
}

// Mapa de vendas nulo ou incompleto: formas ausentes contam como zero,
// todas as formas da enumeração aparecem no relatório.
func TestBuildReport_MapaNuloOuIncompleto(t *testing.T) {
	r := caixa.BuildReport(openShift("50.00"), nil)

	require.Len(t, r.SalesByMethod, len(entity.PaymentMethods))
	for _, m := range entity.PaymentMethods {
		assert.True(t, r.SalesByMethod[m].IsZero(), "forma %s deve ser zero", m)
	}
	assert.True(t, dec("50.00").Equal(r.ExpectedCash))
}

func TestBuildReport_Fechado(t *testing.T) {
	tests := []struct {
		name    string
		counted string
		diff    string
		outcome string
	}{
		{"contagem exata", "320.00", "0.00", caixa.OutcomeExact},
		{"sobra na gaveta", "325.00", "5.00", caixa.OutcomeSurplus},
		{"falta na gaveta", "310.50", "-9.50", caixa.OutcomeShortage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := withOps(openShift("100.00"), []string{"30.00"}, []string{"50.00"})
			closeShift(shift, tt.counted)
			sales := map[entity.PaymentMethod]decimal.Decimal{entity.PaymentCash: dec("200.00")}

			r := caixa.BuildReport(shift, sales)

			require.NotNil(t, r.Difference)
			assert.True(t, dec(tt.diff).Equal(*r.Difference), "diferença %s, veio %s", tt.diff, r.Difference)
			assert.Equal(t, tt.outcome, r.Outcome)
		})
	}
}

// Idempotência: mesma entrada, mesmo relatório — BuildReport é função pura.
func TestBuildReport_Idempotente(t *testing.T) {
	shift := withOps(openShift("100.00"), []string{"10.00", "20.00"}, []string{"5.00"})
	sales := map[entity.PaymentMethod]decimal.Decimal{entity.PaymentCash: dec("99.90")}

	r1 := caixa.BuildReport(shift, sales)
	r2 := caixa.BuildReport(shift, sales)

	assert.True(t, r1.ExpectedCash.Equal(r2.ExpectedCash))
	assert.True(t, r1.TotalWithdrawals.Equal(r2.TotalWithdrawals))
	assert.True(t, r1.TotalAdditions.Equal(r2.TotalAdditions))
	assert.Equal(t, r1.Outcome, r2.Outcome)
}

// Aritmética decimal não acumula deriva: 0,10 somado cem vezes é 10,00 exato.
func TestBuildReport_SemDerivaDeArredondamento(t *testing.T) {
	shift := openShift("0.00")
	var adds []string
	for i := 0; i < 100; i++ {
		adds = append(adds, "0.10")
	}
	withOps(shift, nil, adds)

	r := caixa.BuildReport(shift, nil)

	assert.True(t, dec("10.00").Equal(r.ExpectedCash), "100 × 0,10 = 10,00 exato, veio %s", r.ExpectedCash)
}

func TestValidateOperation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		reason  string
		wantErr error
	}{
		{"válida", "25.00", "pagamento fornecedor", nil},
		{"valor zero", "0.00", "motivo", domain.ErrInvalidAmount},
		{"valor negativo", "-10.00", "erro", domain.ErrInvalidAmount},
		{"motivo vazio", "10.00", "", domain.ErrInvalidReason},
		{"motivo só espaços", "10.00", "   ", domain.ErrInvalidReason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := caixa.ValidateOperation(dec(tt.amount), tt.reason)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFund(t *testing.T) {
	assert.NoError(t, caixa.ValidateFund(dec("0.00")), "fundo zero é permitido")
	assert.NoError(t, caixa.ValidateFund(dec("100.00")))
	assert.ErrorIs(t, caixa.ValidateFund(dec("-0.01")), domain.ErrInvalidAmount)
}
