package seed

import (
	"fmt"
	"math/rand/v2"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// Inventory un registro por producto: stock en [10, 110), reservado en [0, 20), "Almacén 1..3".
// Con la misma semilla el resultado es reproducible.
func Inventory(products []entity.Product, seed int64) []entity.InventoryItem {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	items := make([]entity.InventoryItem, 0, len(products))
	for _, p := range products {
		items = append(items, entity.InventoryItem{
			Product:  p.Clone(),
			Stock:    rng.IntN(100) + 10,
			Reserved: rng.IntN(20),
			Location: fmt.Sprintf("Almacén %d", rng.IntN(3)+1),
		})
	}
	return items
}
