package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fruver-ledger/internal/domain/stock"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCompute_Estados(t *testing.T) {
	cases := []struct {
		name      string
		purchased int64
		sold      int64
		remaining int64
		extraSold int64
		status    string
	}{
		{"sin movimientos", 0, 0, 0, 0, stock.StatusOK},
		{"queda stock", 100, 60, 40, 0, stock.StatusRemaining},
		{"balance exacto", 100, 100, 0, 0, stock.StatusOK},
		{"sobre-venta", 100, 110, 0, 10, stock.StatusExtraSold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := stock.Compute(d(tc.purchased), d(tc.sold))
			assert.True(t, f.Remaining.Equal(d(tc.remaining)), "remaining esperado %d, obtenido %s", tc.remaining, f.Remaining)
			assert.True(t, f.ExtraSold.Equal(d(tc.extraSold)), "extra_sold esperado %d, obtenido %s", tc.extraSold, f.ExtraSold)
			assert.Equal(t, tc.status, f.Status)
		})
	}
}

func TestCompute_Invariante(t *testing.T) {
	// Purchased - Sold == Remaining - ExtraSold, y a lo sumo uno de los dos es != 0.
	cases := [][2]int64{{0, 0}, {100, 60}, {100, 100}, {100, 150}, {50, 200}}
	for _, c := range cases {
		f := stock.Compute(d(c[0]), d(c[1]))
		assert.True(t, f.Purchased.Sub(f.Sold).Equal(f.Remaining.Sub(f.ExtraSold)),
			"la descomposición debe conservar el balance para %d/%d", c[0], c[1])
		assert.False(t, f.Remaining.IsPositive() && f.ExtraSold.IsPositive(),
			"remaining y extra_sold no pueden ser positivos a la vez")
	}
}

func TestAvailable_ConSigno(t *testing.T) {
	assert.True(t, stock.Compute(d(100), d(60)).Available().Equal(d(40)))
	assert.True(t, stock.Compute(d(100), d(110)).Available().Equal(d(-10)),
		"la disponibilidad debe quedar negativa tras sobre-venta")
}

func TestLotStatus(t *testing.T) {
	assert.Equal(t, stock.StatusRemaining, stock.LotStatus(d(5)))
	assert.Equal(t, stock.StatusOK, stock.LotStatus(decimal.Zero))
	assert.Equal(t, stock.StatusExtraSold, stock.LotStatus(d(-5)))
}
