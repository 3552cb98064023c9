package vendas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcaixa "github.com/caixaflow/pdv-api/internal/application/caixa"
	"github.com/caixaflow/pdv-api/internal/application/vendas"
	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func setup(t *testing.T) (*vendas.UseCase, string) {
	t.Helper()
	store := memory.NewStore()
	ledger := appcaixa.NewLedgerUseCase(store.TxRunner(), store.Shifts(), store.CashOperations(), store.Sales())
	shift, err := ledger.OpenShift(context.Background(), "op-1", "Maria", dec("100.00"))
	require.NoError(t, err)
	return vendas.NewUseCase(store.Sales(), store.Shifts()), shift.ID
}

func TestRegisterSale(t *testing.T) {
	uc, shiftID := setup(t)

	sale, err := uc.RegisterSale(context.Background(), vendas.SaleInput{
		OperatorID:    "op-1",
		Total:         dec("42.50"),
		PaymentMethod: "dinheiro",
		Origin:        entity.SaleOriginTable,
		Description:   "mesa 7",
	})
	require.NoError(t, err)
	assert.Equal(t, shiftID, sale.ShiftID, "venda associada ao turno aberto")
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)
}

func TestRegisterSale_Invalida(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      vendas.SaleInput
		wantErr error
	}{
		{"total zero", vendas.SaleInput{Total: dec("0"), PaymentMethod: "dinheiro"}, domain.ErrInvalidAmount},
		{"total negativo", vendas.SaleInput{Total: dec("-5.00"), PaymentMethod: "pix"}, domain.ErrInvalidAmount},
		{"forma desconhecida", vendas.SaleInput{Total: dec("10.00"), PaymentMethod: "cheque"}, domain.ErrInvalidPayment},
		{"origem desconhecida", vendas.SaleInput{Total: dec("10.00"), PaymentMethod: "pix", Origin: "drive"}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RegisterSale(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterSale_SemTurnoAberto(t *testing.T) {
	store := memory.NewStore()
	uc := vendas.NewUseCase(store.Sales(), store.Shifts())

	_, err := uc.RegisterSale(context.Background(), vendas.SaleInput{
		Total: dec("10.00"), PaymentMethod: "dinheiro",
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
}

// A redução por forma de pagamento agrupa e soma, com zero para as formas
// sem venda — é o oráculo que o relatório do caixa consome.
func TestTotalsByMethod(t *testing.T) {
	uc, shiftID := setup(t)
	ctx := context.Background()

	for _, s := range []struct{ total, method string }{
		{"30.00", "dinheiro"},
		{"20.00", "dinheiro"},
		{"15.50", "pix"},
		{"99.90", "credito"},
	} {
		_, err := uc.RegisterSale(ctx, vendas.SaleInput{Total: dec(s.total), PaymentMethod: s.method})
		require.NoError(t, err)
	}

	totals, grand, err := uc.TotalsByMethod(ctx, shiftID)
	require.NoError(t, err)
	assert.True(t, dec("50.00").Equal(totals[entity.PaymentCash]))
	assert.True(t, dec("15.50").Equal(totals[entity.PaymentPix]))
	assert.True(t, dec("99.90").Equal(totals[entity.PaymentCredit]))
	assert.True(t, totals[entity.PaymentDebit].IsZero())
	assert.True(t, totals[entity.PaymentCourtesy].IsZero())
	assert.True(t, dec("165.40").Equal(grand))
}

func TestTotalsByMethod_TurnoInexistente(t *testing.T) {
	uc, _ := setup(t)
	_, _, err := uc.TotalsByMethod(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesByShift_Ordem(t *testing.T) {
	uc, shiftID := setup(t)
	ctx := context.Background()

	first, err := uc.RegisterSale(ctx, vendas.SaleInput{Total: dec("10.00"), PaymentMethod: "dinheiro"})
	require.NoError(t, err)
	_, err = uc.RegisterSale(ctx, vendas.SaleInput{Total: dec("20.00"), PaymentMethod: "debito"})
	require.NoError(t, err)

	sales, err := uc.SalesByShift(ctx, shiftID)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, first.ID, sales[0].ID, "ordem de criação preservada")
}
