package inventory

import "github.com/newtop/marmoleria-api/internal/domain/entity"

// Stats totales del inventario completo (sin filtros).
type Stats struct {
	TotalProducts  int
	TotalStock     int
	TotalReserved  int
	TotalAvailable int
	LowStock       int // productos con disponible < LowThreshold
}

// ComputeStats recorre la colección completa.
func ComputeStats(items []entity.InventoryItem) Stats {
	s := Stats{TotalProducts: len(items)}
	for _, it := range items {
		s.TotalStock += it.Stock
		s.TotalReserved += it.Reserved
		avail := it.Available()
		s.TotalAvailable += avail
		if TierFor(avail) == TierLow {
			s.LowStock++
		}
	}
	return s
}
