package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/reporting"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// ReportHandler pagina performance: KPI di periodo, classifica prodotti,
// leaderboard affiliati e contatori di stato.
type ReportHandler struct {
	snapshots repository.SnapshotLoader
}

// NewReportHandler costruisce l'handler.
func NewReportHandler(snapshots repository.SnapshotLoader) *ReportHandler {
	return &ReportHandler{snapshots: snapshots}
}

// reportFilter monta il filtro di periodo e scoping dalla query string.
func reportFilter(c *fiber.Ctx) (reporting.Filter, error) {
	period := reporting.Period(c.Query("period", string(reporting.PeriodThisMonth)))

	var customStart, customEnd *time.Time
	if v := c.Query("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return reporting.Filter{}, validation(c, "start deve essere YYYY-MM-DD")
		}
		customStart = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return reporting.Filter{}, validation(c, "end deve essere YYYY-MM-DD")
		}
		customEnd = &t
	}
	window, err := reporting.ResolveWindow(period, time.Now(), customStart, customEnd)
	if err != nil {
		return reporting.Filter{}, validation(c, "periodo non valido")
	}

	user := CurrentUser(c)
	return reporting.Filter{
		Role:        user.Role,
		UserID:      user.ID,
		Window:      window,
		ProductID:   c.Query("product_id"),
		AffiliateID: c.Query("affiliate_id"),
		SubID:       c.Query("sub_id"),
	}, nil
}

// Report godoc
// @Summary      KPI di periodo per il ruolo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period        query  string  false  "today|yesterday|this_week|last_week|this_month|last_month|this_year|last_year|7d|30d|all|custom"
// @Param        start         query  string  false  "YYYY-MM-DD (custom)"
// @Param        end           query  string  false  "YYYY-MM-DD (custom)"
// @Param        product_id    query  string  false  "filtro prodotto"
// @Param        affiliate_id  query  string  false  "filtro affiliato (staff)"
// @Param        sub_id        query  string  false  "filtro sub-id"
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return err
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	report := reporting.BuildReport(snap, f)
	return c.JSON(toReportResponse(CurrentUser(c).Role, report))
}

// TopProducts godoc
// @Summary      Classifica prodotti sul periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "numero massimo di righe (0 = tutte)"
// @Success      200  {array}  dto.ProductStatResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return err
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	limit := c.QueryInt("limit", 0)
	return c.JSON(toProductStatResponses(reporting.TopProducts(snap, f, limit)))
}

// Leaderboard godoc
// @Summary      Leaderboard affiliati sul periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        sort_by  query  string  false  "name|total_revenue|total_sales_count|approved_commissions|pending_commissions"
// @Param        order    query  string  false  "asc|desc"  default(desc)
// @Success      200  {array}  dto.AffiliateRowResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/leaderboard [get]
func (h *ReportHandler) Leaderboard(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return err
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	sortBy := c.Query("sort_by", reporting.SortByRevenue)
	descending := c.Query("order", "desc") != "asc"
	return c.JSON(toAffiliateRowResponses(reporting.Leaderboard(snap, f, sortBy, descending)))
}

// StatusCounts godoc
// @Summary      Contatori di stato sul periodo grezzo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/reports/status-counts [get]
func (h *ReportHandler) StatusCounts(c *fiber.Ctx) error {
	f, err := reportFilter(c)
	if err != nil {
		return err
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reporting.StatusCounts(snap, f.Window))
}
