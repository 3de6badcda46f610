package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/auth"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/application/usecase"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// RouterDeps dipendenze del router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	SaleUC         *usecase.SaleUseCase
	ProductUC      *usecase.ProductUseCase
	NotificationUC *usecase.NotificationUseCase
	TicketUC       *usecase.TicketUseCase
	DashboardUC    *usecase.DashboardUseCase
	StockExpenseUC *usecase.StockExpenseUseCase
	Ledger         *ledger.Service
	Receipts       ledger.ReceiptPDFGenerator

	Snapshots repository.SnapshotLoader
	TxRepo    repository.TransactionRepository
	UserRepo  repository.UserRepository
	JWTSecret string
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staffOnly := RequireRoles(entity.RoleAdmin, entity.RoleManager)

	// Auth (pubblico solo il login)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Snapshots)
	api.Post("/auth/login", authHandler.Login)

	// Rotte protette (richiedono Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	authGroup := protected.Group("/auth")
	authGroup.Get("/me", authHandler.Me)
	authGroup.Put("/password", authHandler.ChangePassword)
	authGroup.Put("/profile", authHandler.UpdateProfile)

	// Utenti (staff; la creazione e il blocco restano guard-ati nel caso d'uso)
	users := protected.Group("/users", staffOnly)
	userHandler := NewUserHandler(deps.AuthUC, deps.Snapshots)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/blocked", userHandler.SetBlocked)

	// Ordini
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", staffOnly, saleHandler.Create)
	sales.Post("/scan-duplicates", saleHandler.ScanDuplicates)
	sales.Get("/:id", saleHandler.Get)
	sales.Put("/:id/status", saleHandler.ChangeStatus)
	sales.Post("/:id/contacts", saleHandler.Contact)
	sales.Put("/:id/notes", saleHandler.UpdateNotes)
	sales.Put("/:id/customer", saleHandler.UpdateCustomer)

	// Registro pagamenti
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.Ledger, deps.Snapshots, deps.TxRepo, deps.Receipts)
	payments.Get("/", paymentHandler.List)
	payments.Get("/balance", paymentHandler.Balance)
	payments.Get("/pending", staffOnly, paymentHandler.ListPending)
	payments.Post("/payout", paymentHandler.Payout)
	payments.Post("/transfer", paymentHandler.Transfer)
	payments.Post("/bonus", staffOnly, paymentHandler.Bonus)
	payments.Post("/adjustment", RequireRoles(entity.RoleAdmin), paymentHandler.Adjust)
	payments.Put("/:id/approve", RequireRoles(entity.RoleAdmin), paymentHandler.Approve)
	payments.Put("/:id/reject", RequireRoles(entity.RoleAdmin), paymentHandler.Reject)
	payments.Get("/:id/receipt", staffOnly, paymentHandler.Receipt)

	// Performance
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Snapshots)
	reports.Get("/", reportHandler.Report)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/leaderboard", staffOnly, reportHandler.Leaderboard)
	reports.Get("/status-counts", reportHandler.StatusCounts)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Avvisi
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", staffOnly, notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", RequireRoles(entity.RoleAdmin), notificationHandler.Delete)

	// Ticket di assistenza
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Open)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/:id/replies", ticketHandler.Reply)
	tickets.Put("/:id/status", ticketHandler.SetStatus)

	// Catalogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", staffOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", staffOnly, productHandler.Update)
	products.Put("/:id/stock", staffOnly, productHandler.AdjustStock)

	// Spese stock
	stockExpenses := protected.Group("/stock-expenses", staffOnly)
	stockExpenseHandler := NewStockExpenseHandler(deps.StockExpenseUC)
	stockExpenses.Post("/", stockExpenseHandler.Create)
	stockExpenses.Get("/", stockExpenseHandler.List)
	stockExpenses.Delete("/:id", stockExpenseHandler.Delete)
}
