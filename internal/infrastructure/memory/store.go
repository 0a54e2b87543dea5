// Package memory implementa todos los puertos de persistencia sobre mapas en
// memoria. Sirve como backend de desarrollo (MEMORY_STORE=true) y como store
// de los tests de aplicación, sin levantar PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ trading.TxRunner = (*Store)(nil)

// Store contenedor único de estado. Un solo mutex protege todos los mapas:
// con un lock por entidad la cascada de DeleteLot dejaría ver estados a medias.
type Store struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	vendors   map[string]entity.Vendor
	customers map[string]entity.Customer
	lots      map[string]entity.Lot
	sales     map[string]entity.Sale
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		vendors:   make(map[string]entity.Vendor),
		customers: make(map[string]entity.Customer),
		lots:      make(map[string]entity.Lot),
		sales:     make(map[string]entity.Sale),
	}
}

// Run emula la transacción de Postgres: toma el lock de escritura, copia el
// estado, y si fn falla restaura la copia. Los repos que recibe fn operan sin
// lock propio porque Run ya lo sostiene.
func (s *Store) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lotsCopy := copyMap(s.lots)
	salesCopy := copyMap(s.sales)

	err := fn(&txLotRepo{s: s}, &txSaleRepo{s: s}, &txStockRepo{s: s})
	if err != nil {
		s.lots = lotsCopy
		s.sales = salesCopy
		return err
	}
	return nil
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
