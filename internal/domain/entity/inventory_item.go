package entity

// InventoryItem registro del inventario: un producto del catálogo con existencias y ubicación.
// Reserved no se valida contra Stock; Available puede ser negativo.
type InventoryItem struct {
	Product
	Stock    int
	Reserved int
	Location string
}

// Available unidades disponibles (stock - reservado).
func (i InventoryItem) Available() int {
	return i.Stock - i.Reserved
}

// Clone copia el ítem sin compartir slices.
func (i InventoryItem) Clone() InventoryItem {
	i.Product = i.Product.Clone()
	return i
}
