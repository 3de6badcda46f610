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

	"github.com/mwsdigital/console-api/internal/application/auth"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/application/usecase"
	infrapdf "github.com/mwsdigital/console-api/internal/infrastructure/pdf"
	"github.com/mwsdigital/console-api/internal/infrastructure/postgres"
	httpRouter "github.com/mwsdigital/console-api/internal/interfaces/http"
	"github.com/mwsdigital/console-api/pkg/config"
	"github.com/mwsdigital/console-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	stockExpenseRepo := postgres.NewStockExpenseRepository(pool)
	snapshots := postgres.NewSnapshotStore(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	ledgerSvc := ledger.NewService(snapshots, txRepo, saleRepo, log)
	saleUC := usecase.NewSaleUseCase(saleRepo, snapshots, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, log)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, log)
	dashboardUC := usecase.NewDashboardUseCase(snapshots, ticketRepo, log)
	stockExpenseUC := usecase.NewStockExpenseUseCase(stockExpenseRepo, productRepo, log)
	receipts := infrapdf.NewMarotoReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SaleUC:         saleUC,
		ProductUC:      productUC,
		NotificationUC: notificationUC,
		TicketUC:       ticketUC,
		DashboardUC:    dashboardUC,
		StockExpenseUC: stockExpenseUC,
		Ledger:         ledgerSvc,
		Receipts:       receipts,
		Snapshots:      snapshots,
		TxRepo:         txRepo,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
