package http

import (
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/application/reporting"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

func money(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		AffiliateID:   s.AffiliateID,
		AffiliateName: s.AffiliateName,
		BundleID:      s.BundleID,
		VariantID:     s.VariantID,

		SaleAmount:       money(s.SaleAmount),
		CommissionAmount: money(s.CommissionAmount),
		Quantity:         s.Quantity,

		Status:              s.Status,
		StatusUpdatedAt:     s.StatusUpdatedAt,
		LastContactedBy:     s.LastContactedBy,
		LastContactedByName: s.LastContactedByName,
		IsBonus:             s.IsBonus,

		CustomerName:          s.CustomerName,
		CustomerPhone:         s.CustomerPhone,
		CustomerEmail:         s.CustomerEmail,
		CustomerStreetAddress: s.CustomerStreetAddress,
		CustomerHouseNumber:   s.CustomerHouseNumber,
		CustomerCity:          s.CustomerCity,
		CustomerProvince:      s.CustomerProvince,
		CustomerZip:           s.CustomerZip,

		SubID:        s.SubID,
		TrackingCode: s.TrackingCode,
		Notes:        s.Notes,
		SaleDate:     s.SaleDate,
	}
	for _, item := range s.ContactHistory {
		out.ContactHistory = append(out.ContactHistory, dto.ContactHistoryItemResponse{
			ID:        item.ID,
			UserID:    item.UserID,
			UserName:  item.UserName,
			Channel:   item.Channel,
			Note:      item.Note,
			CreatedAt: item.CreatedAt,
		})
	}
	return out
}

func toSaleResponses(list []entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out
}

func toTransactionResponse(t entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:             t.ID,
		Type:           t.Type,
		Status:         t.Status,
		FromUserID:     t.FromUserID,
		FromUserName:   t.FromUserName,
		ToUserID:       t.ToUserID,
		ToUserName:     t.ToUserName,
		Amount:         money(t.Amount),
		PaymentMethod:  t.PaymentMethod,
		PaymentDetails: t.PaymentDetails,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
		ResolvedAt:     t.ResolvedAt,
	}
}

func toTransactionResponses(list []entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

func toBalanceResponse(b ledger.Balance, available decimal.Decimal) dto.BalanceResponse {
	return dto.BalanceResponse{
		Earned:             money(b.Earned),
		TransfersReceived:  money(b.TransfersReceived),
		TransfersSent:      money(b.TransfersSent),
		Adjustments:        money(b.Adjustments),
		Payouts:            money(b.Payouts),
		PendingPayouts:     money(b.PendingPayouts),
		Current:            money(b.Current),
		AvailableForPayout: money(available),
	}
}

// toReportResponse valorizza solo i campi della vista del ruolo.
func toReportResponse(role entity.Role, r reporting.Report) dto.ReportResponse {
	out := dto.ReportResponse{
		TotalSalesCount: r.TotalSalesCount,
		ApprovalRate:    r.ApprovalRate,
	}
	switch role {
	case entity.RoleAffiliate:
		out.ApprovedCommissions = money(r.ApprovedCommissions)
		out.PendingCommissions = money(r.PendingCommissions)
	case entity.RoleCustomerCare:
		out.ConfirmedCareCommissions = money(r.ConfirmedCareCommissions)
		out.PendingCareCommissions = money(r.PendingCareCommissions)
		out.OrdersHandled = r.OrdersHandled
		out.ConversionRate = r.ConversionRate
	default:
		out.ConfirmedRevenue = money(r.ConfirmedRevenue)
		out.PendingRevenue = money(r.PendingRevenue)
		out.ConfirmedAffiliateCommissions = money(r.ConfirmedAffiliateCommissions)
		out.PendingAffiliateCommissions = money(r.PendingAffiliateCommissions)
		out.ConfirmedLogisticsCommissions = money(r.ConfirmedLogisticsCommissions)
		out.PendingLogisticsCommissions = money(r.PendingLogisticsCommissions)
		if role == entity.RoleAdmin || role == entity.RoleManager {
			out.ConfirmedCosts = money(r.ConfirmedCosts)
			out.ConfirmedPlatformProfit = money(r.ConfirmedPlatformProfit)
			out.PendingPlatformProfit = money(r.PendingPlatformProfit)
			out.NetProfit = money(r.NetProfit)
		}
	}
	return out
}

func toProductStatResponses(list []reporting.ProductStat) []dto.ProductStatResponse {
	out := make([]dto.ProductStatResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductStatResponse{
			ProductID:      p.ProductID,
			Name:           p.Name,
			ImageURL:       p.ImageURL,
			Count:          p.Count,
			Quantity:       p.Quantity,
			Revenue:        money(p.Revenue),
			Commission:     money(p.Commission),
			CareCommission: money(p.CareCommission),
		})
	}
	return out
}

func toAffiliateRowResponses(list []reporting.AffiliateRow) []dto.AffiliateRowResponse {
	out := make([]dto.AffiliateRowResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.AffiliateRowResponse{
			AffiliateID:         r.AffiliateID,
			Name:                r.Name,
			TotalRevenue:        money(r.TotalRevenue),
			TotalSalesCount:     r.TotalSalesCount,
			ApprovedCommissions: money(r.ApprovedCommissions),
			PendingCommissions:  money(r.PendingCommissions),
		})
	}
	return out
}

func toNotificationResponse(n entity.Notification, viewerID string) dto.NotificationResponse {
	roles := make([]string, 0, len(n.TargetRoles))
	for _, r := range n.TargetRoles {
		roles = append(roles, string(r))
	}
	return dto.NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
		TargetRoles: roles,
		IsRead:      n.IsReadBy(viewerID),
		CreatedAt:   n.CreatedAt,
	}
}

func toTicketResponse(t entity.Ticket) dto.TicketResponse {
	out := dto.TicketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		UserName:  t.UserName,
		Role:      string(t.Role),
		Subject:   t.Subject,
		Status:    t.Status,
		Replies:   make([]dto.TicketReplyResponse, 0, len(t.Replies)),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for _, r := range t.Replies {
		out.Replies = append(out.Replies, dto.TicketReplyResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Role:      string(r.Role),
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

// toProductResponse proietta il catalogo; i campi di costo compaiono solo
// per admin e manager.
func toProductResponse(p entity.Product, showCosts bool) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       money(p.Price),
		Commission:  money(p.Commission),
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if showCosts {
		out.ProductCost = money(p.ProductCost)
		out.ShippingCost = money(p.ShippingCost)
		out.FulfillmentCost = money(p.FulfillmentCost)
		out.CustomerCareCommission = money(p.CustomerCareCommission)
		out.PlatformFee = money(p.PlatformFee)
	}
	for _, b := range p.Bundles {
		br := dto.BundleOptionResponse{
			ID:         b.ID,
			Quantity:   b.Quantity,
			Price:      money(b.Price),
			Commission: money(b.Commission),
		}
		if showCosts {
			br.PlatformFee = money(b.PlatformFee)
		}
		out.Bundles = append(out.Bundles, br)
	}
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, dto.VariantResponse{ID: v.ID, Name: v.Name, Stock: v.Stock})
	}
	return out
}

func toStockExpenseResponse(e entity.StockExpense) dto.StockExpenseResponse {
	return dto.StockExpenseResponse{
		ID:           e.ID,
		ProductID:    e.ProductID,
		Description:  e.Description,
		Payer:        e.Payer,
		Quantity:     e.Quantity,
		UnitCost:     money(e.UnitCost),
		TotalCost:    money(e.TotalCost),
		PurchaseDate: e.PurchaseDate,
	}
}
