package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/newtop/marmoleria-api/docs"
	"github.com/newtop/marmoleria-api/internal/application/assistant"
	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/catalog"
	"github.com/newtop/marmoleria-api/internal/application/inventory"
	"github.com/newtop/marmoleria-api/internal/application/quotes"
	"github.com/newtop/marmoleria-api/internal/application/reservations"
	"github.com/newtop/marmoleria-api/internal/domain/quote"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	infraai "github.com/newtop/marmoleria-api/internal/infrastructure/ai"
	"github.com/newtop/marmoleria-api/internal/infrastructure/csvexport"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/internal/infrastructure/metrics"
	infrapdf "github.com/newtop/marmoleria-api/internal/infrastructure/pdf"
	"github.com/newtop/marmoleria-api/internal/infrastructure/postgres"
	"github.com/newtop/marmoleria-api/internal/infrastructure/seed"
	"github.com/newtop/marmoleria-api/internal/infrastructure/sitemap"
	httpRouter "github.com/newtop/marmoleria-api/internal/interfaces/http"
	"github.com/newtop/marmoleria-api/internal/scheduler"
	"github.com/newtop/marmoleria-api/pkg/config"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	products, err := seed.LoadCatalog(cfg.Seed.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	productCatalog := memory.NewCatalog(products)

	invSeed := cfg.Seed.InventorySeed
	if invSeed == 0 {
		invSeed = time.Now().UnixNano()
	}
	inventoryRepo := memory.NewInventoryRepository(seed.Inventory(products, invSeed))

	seedQuotes := seed.Quotes(cfg.Seed.AdminName)
	quoteRepo := memory.NewQuoteRepository(seedQuotes)
	numberer := quote.NewNumberer()
	for _, q := range seedQuotes {
		numberer.Observe(q.Number)
	}

	// Slot de sesión: PostgreSQL si hay DATABASE_URL, memoria en caso contrario.
	var sessionStore repository.SessionStore = memory.NewSessionStore()
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewSessionStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de sesión")
		}
		sessionStore = pgStore
		log.Info().Msg("sesión persistida en PostgreSQL")
	}

	recorder := metrics.NewPrometheusRecorder()

	gate := auth.NewGate(memory.NewUserRepository(), sessionStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Latency.Login, log.Named("auth"), recorder)
	if err := gate.SeedAdmin(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName); err != nil {
		log.Fatal().Err(err).Msg("crear cuenta administradora")
	}
	if err := gate.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
	}

	advisor := infraai.NewAnthropicAdvisor(infraai.AnthropicConfig{
		APIKey: cfg.AI.AnthropicAPIKey,
		Model:  cfg.AI.AnthropicModel,
	})
	if !advisor.Enabled() {
		log.Info().Msg("asistente sin API key: sugerencias por palabras clave")
	}

	catalogUC := catalog.NewCatalogUseCase(productCatalog)
	quoteRequestUC := catalog.NewQuoteRequestUseCase(productCatalog, memory.NewQuoteRequestRepository(),
		cfg.Latency.QuoteRequest, log.Named("quote-requests"), recorder)
	assistantUC := assistant.NewAssistantUseCase(productCatalog, advisor, log.Named("assistant"))
	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo, productCatalog, log.Named("inventory"), recorder)
	quoteUC := quotes.NewQuoteUseCase(quoteRepo, productCatalog, numberer, cfg.Quotes.ValidUntilDays, log.Named("quotes"), recorder)
	exportUC := quotes.NewExportUseCase(quoteRepo, infrapdf.NewQuotePDFGenerator(infrapdf.DefaultCompany), csvexport.NewQuoteCSVEncoder())
	reservationUC := reservations.NewReservationUseCase(memory.NewReservationRepository(seed.Reservations()), log.Named("reservations"))

	siteMap, err := sitemap.Build(cfg.App.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("generar sitemap")
	}

	sched := scheduler.New(cfg.Quotes.ExpiryCron, quoteUC, log)
	sched.RunOnce(ctx)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	// serveCtx se cancela al recibir la señal de apagado y aborta las esperas en curso.
	serveCtx, stopServing := context.WithCancel(context.Background())
	defer stopServing()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "NewTop Marmolería API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gate:          gate,
		CatalogUC:     catalogUC,
		QuoteRequests: quoteRequestUC,
		AssistantUC:   assistantUC,
		InventoryUC:   inventoryUC,
		QuoteUC:       quoteUC,
		ExportUC:      exportUC,
		Reservations:  reservationUC,
		Sitemap:       siteMap,
		Metrics:       recorder.Handler(),

		BaseContext:    serveCtx,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopServing()
	sched.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
