package quote_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
)

type totalsWorld struct {
	catalog fakeCatalog
	quote   entity.Quote
	err     error
}

func (w *totalsWorld) productInCatalog(id int64, name string, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	w.catalog[id] = entity.Product{ID: id, Name: name, Price: p}
	return nil
}

func (w *totalsWorld) newQuote() error {
	w.quote = entity.Quote{}
	return nil
}

func (w *totalsWorld) newQuoteWithDiscount(discount string) error {
	d, err := decimal.NewFromString(discount)
	if err != nil {
		return err
	}
	w.quote = entity.Quote{Discount: d}
	return nil
}

func (w *totalsWorld) addItem(area string, productID int64) error {
	a, err := decimal.NewFromString(area)
	if err != nil {
		return err
	}
	q, err := quote.NewEngine(w.catalog).AddItem(w.quote, productID, a)
	if err != nil {
		return err
	}
	w.quote = q
	return nil
}

func (w *totalsWorld) tryAddItem(area string, productID int64) error {
	w.err = w.addItem(area, productID)
	return nil
}

func (w *totalsWorld) lastItemID() (string, error) {
	if len(w.quote.Items) == 0 {
		return "", fmt.Errorf("la cotización no tiene ítems")
	}
	return w.quote.Items[len(w.quote.Items)-1].ID, nil
}

func (w *totalsWorld) updateLastArea(area string) error {
	id, err := w.lastItemID()
	if err != nil {
		return err
	}
	a, err := decimal.NewFromString(area)
	if err != nil {
		return err
	}
	w.quote, err = quote.UpdateItemArea(w.quote, id, a)
	return err
}

func (w *totalsWorld) removeLast() error {
	id, err := w.lastItemID()
	if err != nil {
		return err
	}
	w.quote, err = quote.RemoveItem(w.quote, id)
	return err
}

func expectAmount(label string, got decimal.Decimal, want string) error {
	if !got.Equal(decimal.RequireFromString(want)) {
		return fmt.Errorf("%s: esperado %s, obtenido %s", label, want, got)
	}
	return nil
}

func (w *totalsWorld) subtotalIs(v string) error {
	return expectAmount("subtotal", quote.Recompute(w.quote).Subtotal, v)
}

func (w *totalsWorld) taxIs(v string) error {
	return expectAmount("IVA", quote.Recompute(w.quote).Tax, v)
}

func (w *totalsWorld) totalIs(v string) error {
	return expectAmount("total", quote.Recompute(w.quote).Total, v)
}

func (w *totalsWorld) failsWith(target error) func() error {
	return func() error {
		if !errors.Is(w.err, target) {
			return fmt.Errorf("esperado %v, obtenido %v", target, w.err)
		}
		return nil
	}
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	w := &totalsWorld{}
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		*w = totalsWorld{catalog: fakeCatalog{}}
		return c, nil
	})

	ctx.Step(`^el catálogo tiene el producto (\d+) "([^"]*)" a (\S+) por m²$`, w.productInCatalog)
	ctx.Step(`^una cotización nueva$`, w.newQuote)
	ctx.Step(`^una cotización nueva con descuento (\S+)$`, w.newQuoteWithDiscount)
	ctx.Step(`^agrego (\S+) m² del producto (\d+)$`, w.addItem)
	ctx.Step(`^intento agregar (\S+) m² del producto (\d+)$`, w.tryAddItem)
	ctx.Step(`^cambio el área del último ítem a (\S+)$`, w.updateLastArea)
	ctx.Step(`^quito el último ítem$`, w.removeLast)
	ctx.Step(`^el subtotal es (\S+)$`, w.subtotalIs)
	ctx.Step(`^el IVA es (\S+)$`, w.taxIs)
	ctx.Step(`^el total es (\S+)$`, w.totalIs)
	ctx.Step(`^la operación falla por validación$`, w.failsWith(domain.ErrInvalidInput))
	ctx.Step(`^la operación falla porque no existe$`, w.failsWith(domain.ErrNotFound))
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("fallaron escenarios de totales de cotización")
	}
}
