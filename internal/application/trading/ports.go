package trading

import (
	"context"

	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del store, pasando repositorios
// atados a esa tx. Garantiza atomicidad para los comandos de reconciliación: la cascada
// de DeleteLot y el par contador+tombstone de DeleteSale/RestoreItem se aplican completos
// o no se aplican.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error) error
}
