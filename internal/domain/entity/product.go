package entity

import "time"

// Unidades de venta de un producto. Fijas al crearlo; el motor de stock nunca las convierte.
const (
	UnitTypeBox = "BOX" // caja
	UnitTypeKg  = "KG"  // kilogramo
	UnitTypeLot = "LOT" // lote completo
)

// Product representa una fruta o producto comerciado.
// El stock no vive aquí: se deriva de lotes y ventas vivas (no borradas).
type Product struct {
	ID        string
	Name      string
	UnitType  string // BOX, KG, LOT
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidUnitType indica si la unidad es una de las soportadas.
func ValidUnitType(u string) bool {
	return u == UnitTypeBox || u == UnitTypeKg || u == UnitTypeLot
}
