// Package quote motor de totales de cotizaciones: ítems, subtotal, IVA, descuento y total.
// Todas las funciones devuelven copias; la cotización de entrada no se modifica.
package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

// TaxRate IVA aplicado al subtotal.
var TaxRate = decimal.RequireFromString("0.16")

// DefaultValidUntilDays vigencia por defecto de una cotización.
const DefaultValidUntilDays = 30

// ProductLookup resuelve productos del catálogo por id. Devuelve (nil, nil) si no existe.
type ProductLookup interface {
	GetByID(id int64) (*entity.Product, error)
}

// Engine operaciones sobre ítems que necesitan el catálogo.
type Engine struct {
	products ProductLookup
	newID    func() string
}

// NewEngine construye el motor con ids UUID para los ítems.
func NewEngine(products ProductLookup) *Engine {
	return &Engine{products: products, newID: uuid.NewString}
}

// AddItem agrega una línea con nombre y precio copiados del catálogo.
func (e *Engine) AddItem(q entity.Quote, productID int64, area decimal.Decimal) (entity.Quote, error) {
	if err := ValidateArea(area); err != nil {
		return q, err
	}
	p, err := e.products.GetByID(productID)
	if err != nil {
		return q, fmt.Errorf("buscar producto: %w", err)
	}
	if p == nil {
		return q, domain.NewNotFound("producto", fmt.Sprint(productID))
	}
	out := q.Clone()
	out.Items = append(out.Items, entity.QuoteItem{
		ID:           e.newID(),
		ProductID:    p.ID,
		ProductName:  p.Name,
		Area:         area,
		PricePerUnit: p.Price,
	})
	return Apply(out), nil
}

// RemoveItem quita la línea con itemID.
func RemoveItem(q entity.Quote, itemID string) (entity.Quote, error) {
	idx := indexOf(q.Items, itemID)
	if idx < 0 {
		return q, domain.NewNotFound("ítem", itemID)
	}
	out := q.Clone()
	out.Items = append(out.Items[:idx], out.Items[idx+1:]...)
	return Apply(out), nil
}

// UpdateItemArea cambia el área de una línea existente.
func UpdateItemArea(q entity.Quote, itemID string, area decimal.Decimal) (entity.Quote, error) {
	if err := ValidateArea(area); err != nil {
		return q, err
	}
	idx := indexOf(q.Items, itemID)
	if idx < 0 {
		return q, domain.NewNotFound("ítem", itemID)
	}
	out := q.Clone()
	out.Items[idx].Area = area
	return Apply(out), nil
}

func indexOf(items []entity.QuoteItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ValidateArea el área debe ser mayor que cero.
func ValidateArea(area decimal.Decimal) error {
	if !area.IsPositive() {
		return domain.NewValidationError("area", "debe ser mayor que 0")
	}
	return nil
}

// Totals resultado de Recompute.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Recompute subtotal = Σ área×precio; iva = subtotal×0.16; total = subtotal + iva - descuento.
// Sin redondeo: solo se redondea al mostrar o exportar. Es idempotente.
func Recompute(q entity.Quote) Totals {
	subtotal := decimal.Zero
	for _, it := range q.Items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: q.Discount,
		Total:    subtotal.Add(tax).Sub(q.Discount),
	}
}

// Apply copia la cotización con los totales recalculados.
func Apply(q entity.Quote) entity.Quote {
	t := Recompute(q)
	q.Subtotal, q.Tax, q.Total = t.Subtotal, t.Tax, t.Total
	return q
}

// ValidateForSave acumula todos los fallos: cliente, email, tipo de proyecto, ítems y descuento.
func ValidateForSave(q entity.Quote) error {
	var errs domain.ValidationErrors
	if strings.TrimSpace(q.ClientName) == "" {
		errs.Add("client_name", "requerido")
	}
	if strings.TrimSpace(q.ClientEmail) == "" {
		errs.Add("client_email", "requerido")
	}
	if strings.TrimSpace(q.ProjectType) == "" {
		errs.Add("project_type", "requerido")
	}
	if len(q.Items) == 0 {
		errs.Add("items", "se requiere al menos un ítem")
	}
	for _, it := range q.Items {
		if !it.Area.IsPositive() {
			errs.Add("items", fmt.Sprintf("ítem %s: el área debe ser mayor que 0", it.ID))
		}
	}
	if reason := discountProblem(q.Discount, Recompute(q)); reason != "" {
		errs.Add("discount", reason)
	}
	if q.Status != "" && !entity.IsValidQuoteStatus(q.Status) {
		errs.Add("status", "estado desconocido")
	}
	return errs.Err()
}

// ValidateDiscount el descuento no puede ser negativo ni superar subtotal + IVA.
func ValidateDiscount(discount decimal.Decimal, t Totals) error {
	if reason := discountProblem(discount, t); reason != "" {
		return domain.NewValidationError("discount", reason)
	}
	return nil
}

func discountProblem(discount decimal.Decimal, t Totals) string {
	if discount.IsNegative() {
		return "no puede ser negativo"
	}
	if discount.GreaterThan(t.Subtotal.Add(t.Tax)) {
		return "no puede superar subtotal más IVA"
	}
	return ""
}

// DateOnly trunca a medianoche UTC del día calendario de t.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidUntil fecha de creación + days (solo fecha). days <= 0 usa el valor por defecto.
func ValidUntil(created time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultValidUntilDays
	}
	return DateOnly(created).AddDate(0, 0, days)
}

// IsOverdue borrador o enviada con vigencia anterior a today.
func IsOverdue(q entity.Quote, today time.Time) bool {
	if q.Status != entity.QuoteStatusBorrador && q.Status != entity.QuoteStatusEnviada {
		return false
	}
	return q.ValidUntil.Before(DateOnly(today))
}
