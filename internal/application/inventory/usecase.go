// Package inventory casos de uso de la consola de inventario: vista de tabla, altas, ediciones,
// bajas y tarjetas de resumen.
package inventory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/catalog"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/inventory"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// InventoryUseCase orquesta el motor de tabla sobre el repositorio de inventario.
// El estado de vista (búsqueda, filtro, orden, página) es único y compartido por la consola.
type InventoryUseCase struct {
	repo    repository.InventoryRepository
	catalog repository.ProductCatalog
	log     *logger.Logger
	metrics ports.Recorder

	mu    sync.Mutex
	state *inventory.ViewState
}

// NewInventoryUseCase construye el caso de uso con el estado de vista inicial.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	catalog repository.ProductCatalog,
	log *logger.Logger,
	metrics ports.Recorder,
) *InventoryUseCase {
	return &InventoryUseCase{
		repo:    repo,
		catalog: catalog,
		log:     log,
		metrics: metrics,
		state:   inventory.NewViewState(),
	}
}

// View consulta sin estado: cada parámetro viene en la petición.
func (uc *InventoryUseCase) View(in dto.InventoryQuery) (*dto.InventoryViewResponse, error) {
	q, err := queryFromDTO(in)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	res := toViewResponse(inventory.View(items, q), q)
	return &res, nil
}

// CurrentView aplica el estado guardado al inventario actual.
func (uc *InventoryUseCase) CurrentView() (*dto.InventoryViewResponse, error) {
	return uc.UpdateView(dto.InventoryViewRequest{})
}

// UpdateView modifica el estado guardado. Búsqueda o tipo reinician la página; luego se aplica
// el cambio de orden y por último la página pedida.
func (uc *InventoryUseCase) UpdateView(in dto.InventoryViewRequest) (*dto.InventoryViewResponse, error) {
	key, ok := inventory.ParseSortKey(in.ToggleSort)
	if !ok {
		return nil, domain.NewValidationError("toggle_sort", "columna desconocida")
	}
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if in.Search != nil {
		uc.state.SetSearch(*in.Search)
	}
	if in.Type != nil {
		uc.state.SetType(*in.Type)
	}
	if key != "" {
		uc.state.ToggleSort(key)
	}
	if in.Page != nil {
		uc.state.SetPage(*in.Page)
	}
	page := uc.state.Apply(items)
	res := toViewResponse(page, uc.state.Query())
	return &res, nil
}

// Create alta de producto. El id lo asigna el repositorio.
func (uc *InventoryUseCase) Create(in dto.InventoryItemRequest) (*dto.InventoryRowResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(&item); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	uc.metrics.InventoryMutation("create")
	uc.log.Info().Int64("id", item.ID).Str("name", item.Name).Msg("producto agregado al inventario")
	out := toRowResponse(inventory.Derive([]entity.InventoryItem{item})[0])
	return &out, nil
}

// Update edición completa de un producto existente.
func (uc *InventoryUseCase) Update(id int64, in dto.InventoryItemRequest) (*dto.InventoryRowResponse, error) {
	item, err := itemFromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := uc.repo.Update(&item); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	uc.metrics.InventoryMutation("update")
	uc.log.Info().Int64("id", id).Msg("producto de inventario actualizado")
	out := toRowResponse(inventory.Derive([]entity.InventoryItem{item})[0])
	return &out, nil
}

// Delete baja por id.
func (uc *InventoryUseCase) Delete(id int64) error {
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	uc.metrics.InventoryMutation("delete")
	uc.log.Info().Int64("id", id).Msg("producto eliminado del inventario")
	return nil
}

// Stats tarjetas de resumen sobre la colección completa.
func (uc *InventoryUseCase) Stats() (*dto.InventoryStatsResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	s := inventory.ComputeStats(items)
	return &dto.InventoryStatsResponse{
		TotalProducts:  s.TotalProducts,
		TotalStock:     s.TotalStock,
		TotalReserved:  s.TotalReserved,
		TotalAvailable: s.TotalAvailable,
		LowStock:       s.LowStock,
	}, nil
}

// Types opciones del filtro: "All" y los tipos del catálogo en orden de aparición.
func (uc *InventoryUseCase) Types() (*dto.InventoryTypesResponse, error) {
	products, err := uc.catalog.List()
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	types := append([]string{catalog.CategoryAll}, catalog.Categories(products)...)
	return &dto.InventoryTypesResponse{Types: types}, nil
}

func queryFromDTO(in dto.InventoryQuery) (inventory.Query, error) {
	q := inventory.Query{Search: in.Search, Type: in.Type, Page: in.Page}
	if q.Type == "" {
		q.Type = catalog.CategoryAll
	}
	if q.Page == 0 {
		q.Page = 1
	}
	key, ok := inventory.ParseSortKey(in.Sort)
	if !ok {
		return q, domain.NewValidationError("sort", "columna desconocida")
	}
	if key != "" {
		dir := inventory.Direction(strings.ToLower(in.Dir))
		switch dir {
		case "":
			dir = inventory.Asc
		case inventory.Asc, inventory.Desc:
		default:
			return q, domain.NewValidationError("dir", "debe ser asc o desc")
		}
		q.Sort = inventory.Sort{Key: key, Dir: dir}
	}
	return q, nil
}

func itemFromRequest(in dto.InventoryItemRequest) (entity.InventoryItem, error) {
	var errs domain.ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "requerido")
	}
	if strings.TrimSpace(in.Type) == "" {
		errs.Add("type", "requerido")
	}
	if !in.Price.IsPositive() {
		errs.Add("price", "debe ser mayor que 0")
	}
	if err := errs.Err(); err != nil {
		return entity.InventoryItem{}, err
	}
	return entity.InventoryItem{
		Product: entity.Product{
			Name:        strings.TrimSpace(in.Name),
			Type:        strings.TrimSpace(in.Type),
			Price:       in.Price,
			Image:       in.Image,
			Description: in.Description,
			Application: in.Application,
			Features:    append([]string(nil), in.Features...),
			Dimensions:  in.Dimensions,
			Finish:      in.Finish,
		},
		Stock:    max(in.Stock, 0),
		Reserved: max(in.Reserved, 0),
		Location: in.Location,
	}, nil
}

func toRowResponse(r inventory.Row) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		ProductResponse: dto.NewProductResponse(r.Product),
		Stock:           r.Stock,
		Reserved:        r.Reserved,
		Available:       r.Available,
		Location:        r.Location,
		Status:          string(r.Status),
	}
}

func toViewResponse(p inventory.Page, q inventory.Query) dto.InventoryViewResponse {
	rows := make([]dto.InventoryRowResponse, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, toRowResponse(r))
	}
	return dto.InventoryViewResponse{
		Rows: rows,
		Page: dto.PageResponse{
			Page:       p.Page,
			TotalPages: p.TotalPages,
			PageSize:   inventory.PageSize,
			Total:      p.Total,
		},
		Search: q.Search,
		Type:   q.Type,
		Sort:   dto.InventorySortResponse{Key: string(q.Sort.Key), Dir: string(q.Sort.Dir)},
	}
}
