package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/reporting"
	"github.com/mwsdigital/console-api/internal/application/usecase"
)

// DashboardHandler widget della home per il ruolo richiedente.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler costruisce l'handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard del ruolo sul periodo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "periodo (default this_month)"
// @Param        start   query  string  false  "YYYY-MM-DD (custom)"
// @Param        end     query  string  false  "YYYY-MM-DD (custom)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	period := reporting.Period(c.Query("period", string(reporting.PeriodThisMonth)))

	var customStart, customEnd *time.Time
	if v := c.Query("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return validation(c, "start deve essere YYYY-MM-DD")
		}
		customStart = &t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return validation(c, "end deve essere YYYY-MM-DD")
		}
		customEnd = &t
	}

	user := CurrentUser(c)
	d, err := h.uc.Build(c.Context(), user, period, customStart, customEnd)
	if err != nil {
		return fail(c, err)
	}

	out := dto.DashboardResponse{
		Report:         toReportResponse(user.Role, d.Report),
		TopProducts:    toProductStatResponses(d.TopProducts),
		StatusCounts:   d.StatusCounts,
		LogisticsQueue: d.LogisticsQueue,
		CareQueue:      d.CareQueue,
		PendingPayouts: d.PendingPayouts,
		OpenTickets:    d.OpenTickets,
	}
	if user.Role.HasBalance() {
		out.Balance = money(d.Balance)
		out.AvailableForPayout = money(d.AvailableForPayout)
	}
	return c.JSON(out)
}
