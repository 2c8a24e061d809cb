package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Quotes dos cotizaciones de ejemplo, la más reciente primero. Los totales se recalculan con el motor.
func Quotes(createdBy string) []entity.Quote {
	q1 := entity.Quote{
		ID:            uuid.NewString(),
		Number:        "COT-2026-001",
		ClientName:    "María González",
		ClientEmail:   "maria.gonzalez@email.com",
		ClientPhone:   "+52 555 123 4567",
		ClientAddress: "Av. Reforma 123, CDMX",
		ProjectType:   "Cocina",
		Items: []entity.QuoteItem{{
			ID: uuid.NewString(), ProductID: 1, ProductName: "Mármol Carrara Blanco",
			Area: decimal.NewFromInt(15), PricePerUnit: decimal.NewFromInt(120),
		}},
		Status:      entity.QuoteStatusEnviada,
		CreatedDate: day(2026, time.February, 20),
		ValidUntil:  day(2026, time.March, 20),
		Notes:       "Cliente requiere instalación urgente",
		CreatedBy:   createdBy,
	}
	q2 := entity.Quote{
		ID:          uuid.NewString(),
		Number:      "COT-2026-002",
		ClientName:  "Juan Pérez",
		ClientEmail: "juan.perez@email.com",
		ClientPhone: "+52 555 987 6543",
		ProjectType: "Baño",
		Items: []entity.QuoteItem{{
			ID: uuid.NewString(), ProductID: 2, ProductName: "Granito Negro Absoluto",
			Area: decimal.NewFromInt(8), PricePerUnit: decimal.NewFromInt(150),
		}},
		Discount:    decimal.NewFromInt(100),
		Status:      entity.QuoteStatusAceptada,
		CreatedDate: day(2026, time.February, 18),
		ValidUntil:  day(2026, time.March, 18),
		CreatedBy:   createdBy,
	}
	q1.UpdatedAt, q2.UpdatedAt = q1.CreatedDate, q2.CreatedDate
	return []entity.Quote{quote.Apply(q2), quote.Apply(q1)}
}
