package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/newtop/marmoleria-api/internal/application/assistant"
	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/catalog"
	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/inventory"
	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/application/reservations"
	"github.com/newtop/marmoleria-api/internal/domain/navigation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gate          *auth.Gate
	CatalogUC     *catalog.CatalogUseCase
	QuoteRequests *catalog.QuoteRequestUseCase
	AssistantUC   *assistant.AssistantUseCase
	InventoryUC   *inventory.InventoryUseCase
	QuoteUC       *quotes.QuoteUseCase
	ExportUC      *quotes.ExportUseCase
	Reservations  *reservations.ReservationUseCase
	Sitemap       []byte
	Metrics       fiber.Handler // nil deshabilita /metrics

	// BaseContext se cancela al apagar el servidor; RequestTimeout es el plazo de cada petición.
	BaseContext    context.Context
	RequestTimeout time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestContext(deps.BaseContext, deps.RequestTimeout))

	navHandler := NewNavigationHandler(deps.Sitemap)
	app.Get("/sitemap.xml", navHandler.Sitemap)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}

	api := app.Group("/api")
	api.Get("/openapi.json", openAPI)

	session := OptionalAuth(deps.Gate)

	// Catálogo y formulario de cotización (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.QuoteRequests)
	api.Get("/catalog", catalogHandler.List)
	api.Get("/catalog/categories", catalogHandler.Categories)
	api.Get("/catalog/:id", catalogHandler.GetByID)
	api.Post("/quote-requests", catalogHandler.SubmitQuoteRequest)
	api.Get("/quote-requests", session, RequireRoute(navigation.RouteCotizaciones), catalogHandler.ListQuoteRequests)

	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	api.Post("/assistant/suggestions", assistantHandler.Suggest)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Gate)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.Gate), authHandler.Logout)
	authGroup.Get("/me", session, authHandler.Me)

	api.Get("/navigation", session, navHandler.Decide)
	api.Get("/navigation/routes", navHandler.Routes)

	// Back-office (vendedor): cada grupo hereda la guardia de su pantalla
	inv := api.Group("/inventory", session, RequireRoute(navigation.RouteInventario))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.View)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/stats", inventoryHandler.Stats)
	inv.Get("/types", inventoryHandler.Types)
	inv.Get("/view", inventoryHandler.CurrentView)
	inv.Patch("/view", inventoryHandler.UpdateView)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	q := api.Group("/quotes", session, RequireRoute(navigation.RouteCotizaciones))
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.ExportUC)
	q.Get("/", quoteHandler.List)
	q.Post("/", quoteHandler.Create)
	q.Post("/preview", quoteHandler.Preview)
	q.Post("/expire", quoteHandler.Expire)
	q.Get("/:id", quoteHandler.Get)
	q.Put("/:id", quoteHandler.Update)
	q.Delete("/:id", quoteHandler.Delete)
	q.Patch("/:id/status", quoteHandler.SetStatus)
	q.Post("/:id/items", quoteHandler.AddItem)
	q.Put("/:id/items/:itemId", quoteHandler.UpdateItem)
	q.Delete("/:id/items/:itemId", quoteHandler.RemoveItem)
	q.Get("/:id/export/pdf", quoteHandler.ExportPDF)
	q.Get("/:id/export/csv", quoteHandler.ExportCSV)

	rsv := api.Group("/reservations", session, RequireRoute(navigation.RouteClientes))
	reservationHandler := NewReservationHandler(deps.Reservations)
	rsv.Get("/", reservationHandler.List)
	rsv.Get("/stats", reservationHandler.Stats)
	rsv.Post("/:id/cancel", reservationHandler.Cancel)
}

// openAPI sirve el documento registrado por el paquete docs.
func openAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documentación no registrada"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
