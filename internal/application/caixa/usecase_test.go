package caixa_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcaixa "github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/application/vendas"
	"github.com/caixaflow/pdv-api/internal/domain"
	domaincaixa "github.com/caixaflow/pdv-api/internal/domain/caixa"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/infrastructure/memory"
)

const (
	opID   = "00000000-0000-0000-0000-000000000001"
	opName = "Maria"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newLedger monta o caso de uso sobre o store em memória, junto com o caso
// de uso de vendas para alimentar o agregador.
func newLedger(t *testing.T) (*appcaixa.LedgerUseCase, *vendas.UseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := appcaixa.NewLedgerUseCase(store.TxRunner(), store.Shifts(), store.CashOperations(), store.Sales())
	vuc := vendas.NewUseCase(store.Sales(), store.Shifts())
	return uc, vuc
}

func sell(t *testing.T, vuc *vendas.UseCase, total, method string) {
	t.Helper()
	_, err := vuc.RegisterSale(context.Background(), vendas.SaleInput{
		OperatorID: opID, Total: dec(total), PaymentMethod: method,
	})
	require.NoError(t, err)
}

func TestOpenShift(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	shift, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusOpen, shift.Status)
	assert.True(t, dec("100.00").Equal(shift.InitialCashFund))
	assert.Nil(t, shift.EndTime)
}

// Abrir com turno já aberto deve falhar — e nunca fechar o anterior por
// baixo dos panos, o que zeraria as vendas dele.
func TestOpenShift_SegundaAberturaRecusada(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	first, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)

	_, err = uc.OpenShift(ctx, opID, opName, dec("50.00"))
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)

	// O primeiro turno segue aberto e intacto
	current, err := uc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)
	assert.True(t, dec("100.00").Equal(current.InitialCashFund))
}

func TestOpenShift_FundoNegativo(t *testing.T) {
	uc, _ := newLedger(t)
	_, err := uc.OpenShift(context.Background(), opID, opName, dec("-1.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAddWithdrawal_SemTurnoAberto(t *testing.T) {
	uc, _ := newLedger(t)
	_, err := uc.AddWithdrawal(context.Background(), opID, dec("10.00"), "pagamento fornecedor")
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
}

// Valor não positivo é recusado e nada é anexado ao histórico.
func TestAddWithdrawal_ValorInvalido(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()
	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)

	_, err = uc.AddWithdrawal(ctx, opID, dec("-10.00"), "erro")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	current, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current.Withdrawals, "nenhuma operação deve ter sido registrada")
}

func TestAddOperation_MotivoVazio(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()
	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)

	_, err = uc.AddAddition(ctx, opID, dec("10.00"), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

// Histórico append-only: cada operação só faz as listas crescerem, o motivo
// é gravado já normalizado (trim).
func TestAddOperation_AppendOnly(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()
	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)

	op1, err := uc.AddWithdrawal(ctx, opID, dec("30.00"), "  pagamento fornecedor ")
	require.NoError(t, err)
	assert.Equal(t, "pagamento fornecedor", op1.Reason)
	assert.Equal(t, entity.OperationTypeWithdrawal, op1.Type)

	_, err = uc.AddAddition(ctx, opID, dec("50.00"), "troco extra")
	require.NoError(t, err)
	_, err = uc.AddWithdrawal(ctx, opID, dec("5.00"), "café do entregador")
	require.NoError(t, err)

	current, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Len(t, current.Withdrawals, 2)
	assert.Len(t, current.Additions, 1)
	assert.Equal(t, op1.ID, current.Withdrawals[0].ID, "ordem de criação preservada")
}

// Cenário completo de um dia de loja: fundo 100, reforço 50, sangria 30,
// 200 em vendas em dinheiro → esperado 320; contagem exata no fechamento.
func TestCloseShift_ConferenciaExata(t *testing.T) {
	uc, vuc := newLedger(t)
	ctx := context.Background()

	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)
	_, err = uc.AddAddition(ctx, opID, dec("50.00"), "troco extra")
	require.NoError(t, err)
	_, err = uc.AddWithdrawal(ctx, opID, dec("30.00"), "pagamento fornecedor")
	require.NoError(t, err)
	sell(t, vuc, "120.00", "dinheiro")
	sell(t, vuc, "80.00", "dinheiro")
	sell(t, vuc, "55.00", "pix")

	// Prévia com o turno ainda aberto
	preview, _, err := uc.Report(ctx)
	require.NoError(t, err)
	assert.True(t, dec("320.00").Equal(preview.ExpectedCash), "100+200+50-30")
	assert.Equal(t, domaincaixa.OutcomePending, preview.Outcome)

	closed, err := uc.CloseShift(ctx, dec("320.00"))
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusClosed, closed.Status)
	require.NotNil(t, closed.EndTime)
	assert.True(t, dec("255.00").Equal(closed.TotalSales), "total congelado inclui PIX")

	report, _, err := uc.ReportByShift(ctx, closed.ID)
	require.NoError(t, err)
	require.NotNil(t, report.Difference)
	assert.True(t, report.Difference.IsZero())
	assert.Equal(t, domaincaixa.OutcomeExact, report.Outcome)
}

// Fechado é terminal: sangria, reforço e novo fechamento falham.
func TestCloseShift_Terminal(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)
	_, err = uc.CloseShift(ctx, dec("100.00"))
	require.NoError(t, err)

	_, err = uc.AddAddition(ctx, opID, dec("10.00"), "tarde demais")
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
	_, err = uc.AddWithdrawal(ctx, opID, dec("10.00"), "tarde demais")
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
	_, err = uc.CloseShift(ctx, dec("100.00"))
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
}

func TestCloseShift_ContagemNegativa(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()
	_, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)

	_, err = uc.CloseShift(ctx, dec("-5.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	current, err := uc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current, "turno deve continuar aberto após fechamento inválido")
}

func TestReport_SemTurnoAberto(t *testing.T) {
	uc, _ := newLedger(t)
	_, _, err := uc.Report(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
}

// Depois de fechar um turno pode-se abrir outro; o histórico guarda os dois.
func TestHistory_TurnosSucessivos(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	first, err := uc.OpenShift(ctx, opID, opName, dec("100.00"))
	require.NoError(t, err)
	_, err = uc.CloseShift(ctx, dec("100.00"))
	require.NoError(t, err)

	second, err := uc.OpenShift(ctx, opID, opName, dec("80.00"))
	require.NoError(t, err)

	history, err := uc.History(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "mais recente primeiro")
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, entity.ShiftStatusClosed, history[1].Status)
}
