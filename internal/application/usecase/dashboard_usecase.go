package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/application/reporting"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/internal/domain/sales"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// Dashboard widget di prima pagina per il ruolo richiedente.
type Dashboard struct {
	Report       reporting.Report
	TopProducts  []reporting.ProductStat
	StatusCounts map[string]int

	// Solo per i ruoli con saldo.
	Balance            decimal.Decimal
	AvailableForPayout decimal.Decimal

	// Code di lavoro e badge operativi.
	LogisticsQueue int
	CareQueue      int
	PendingPayouts int
	OpenTickets    int
}

// DashboardUseCase compone i widget della home sopra lo snapshot e il
// motore di report.
type DashboardUseCase struct {
	snapshots  repository.SnapshotLoader
	ticketRepo repository.TicketRepository
	log        *logger.Logger
}

func NewDashboardUseCase(snapshots repository.SnapshotLoader, ticketRepo repository.TicketRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, ticketRepo: ticketRepo, log: log}
}

// Il widget prodotti della home è troncato ai primi 5.
const dashboardTopN = 5

// Build produce la dashboard del ruolo sul periodo dato.
func (uc *DashboardUseCase) Build(ctx context.Context, user entity.User, period reporting.Period, customStart, customEnd *time.Time) (*Dashboard, error) {
	window, err := reporting.ResolveWindow(period, time.Now(), customStart, customEnd)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.UserByID(user.ID) == nil {
		return nil, domain.ErrUserNotFound
	}

	f := reporting.Filter{Role: user.Role, UserID: user.ID, Window: window}
	d := &Dashboard{
		Report:             reporting.BuildReport(snap, f),
		TopProducts:        reporting.TopProducts(snap, f, dashboardTopN),
		StatusCounts:       reporting.StatusCounts(snap, window),
		Balance:            decimal.Zero,
		AvailableForPayout: decimal.Zero,
	}

	if user.Role.HasBalance() {
		b := ledger.ComputeBalance(snap, user)
		d.Balance = b.Current
		d.AvailableForPayout = b.Current.Sub(b.PendingPayouts)
	}

	for _, s := range snap.Sales {
		if s.IsBonus {
			continue
		}
		if sales.IsLogisticsPending(s.Status) {
			d.LogisticsQueue++
		}
		if sales.IsCustomerCarePending(s.Status) {
			d.CareQueue++
		}
	}

	if user.Role == entity.RoleAdmin || user.Role == entity.RoleManager {
		for _, t := range snap.Transactions {
			if t.Type == entity.TransactionPayout && t.Status == entity.TransactionPending {
				d.PendingPayouts++
			}
		}
		open, err := uc.ticketRepo.CountOpen(ctx)
		if err != nil {
			return nil, err
		}
		d.OpenTickets = open
	}

	return d, nil
}
