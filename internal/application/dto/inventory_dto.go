package dto

import "github.com/shopspring/decimal"

// InventoryQuery parámetros de GET /api/inventory (vista sin estado).
type InventoryQuery struct {
	Search string `query:"search"`
	Type   string `query:"type"`
	Sort   string `query:"sort"`
	Dir    string `query:"dir"`
	Page   int    `query:"page"`
}

// InventoryViewRequest body de PATCH /api/inventory/view. Los campos nulos no cambian.
// Search o Type reinician la página a 1; ToggleSort alterna la columna.
type InventoryViewRequest struct {
	Search     *string `json:"search"`
	Type       *string `json:"type"`
	ToggleSort string  `json:"toggle_sort"`
	Page       *int    `json:"page"`
}

// InventoryItemRequest alta o edición de un producto de inventario.
type InventoryItemRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Application string          `json:"application"`
	Features    []string        `json:"features"`
	Dimensions  string          `json:"dimensions"`
	Finish      string          `json:"finish"`
	Stock       int             `json:"stock"`
	Reserved    int             `json:"reserved"`
	Location    string          `json:"location"`
}

// InventoryRowResponse fila de la tabla con los campos derivados.
type InventoryRowResponse struct {
	ProductResponse
	Stock     int    `json:"stock"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// InventorySortResponse orden aplicado; vacío si no hay.
type InventorySortResponse struct {
	Key string `json:"key,omitempty"`
	Dir string `json:"dir,omitempty"`
}

// InventoryViewResponse página de la tabla.
type InventoryViewResponse struct {
	Rows   []InventoryRowResponse `json:"rows"`
	Page   PageResponse           `json:"page"`
	Search string                 `json:"search"`
	Type   string                 `json:"type"`
	Sort   InventorySortResponse  `json:"sort"`
}

// InventoryStatsResponse tarjetas de resumen del inventario.
type InventoryStatsResponse struct {
	TotalProducts  int `json:"total_products"`
	TotalStock     int `json:"total_stock"`
	TotalReserved  int `json:"total_reserved"`
	TotalAvailable int `json:"total_available"`
	LowStock       int `json:"low_stock"`
}

// InventoryTypesResponse opciones del filtro de tipo.
type InventoryTypesResponse struct {
	Types []string `json:"types"`
}
