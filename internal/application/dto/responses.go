package dto

import "time"

// ErrorResponse corpo uniforme degli errori API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UserResponse proiezione pubblica di un utente.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsBlocked  bool   `json:"is_blocked"`
	UniqueLink string `json:"unique_link,omitempty"`
	Balance    string `json:"balance,omitempty"` // solo ruoli con saldo
}

// LoginResponse token e profilo dopo il login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// BalanceResponse scomposizione del saldo.
type BalanceResponse struct {
	Earned             string `json:"earned"`
	TransfersReceived  string `json:"transfers_received"`
	TransfersSent      string `json:"transfers_sent"`
	Adjustments        string `json:"adjustments"`
	Payouts            string `json:"payouts"`
	PendingPayouts     string `json:"pending_payouts"`
	Current            string `json:"current"`
	AvailableForPayout string `json:"available_for_payout"`
}

// TransactionResponse movimento del registro.
type TransactionResponse struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	FromUserID     string     `json:"from_user_id,omitempty"`
	FromUserName   string     `json:"from_user_name,omitempty"`
	ToUserID       string     `json:"to_user_id,omitempty"`
	ToUserName     string     `json:"to_user_name,omitempty"`
	Amount         string     `json:"amount"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	PaymentDetails string     `json:"payment_details,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// ContactHistoryItemResponse voce del log contatti.
type ContactHistoryItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Channel   string    `json:"channel"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleResponse ordine cliente.
type SaleResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	AffiliateID   string `json:"affiliate_id"`
	AffiliateName string `json:"affiliate_name"`
	BundleID      string `json:"bundle_id,omitempty"`
	VariantID     string `json:"variant_id,omitempty"`

	SaleAmount       string `json:"sale_amount"`
	CommissionAmount string `json:"commission_amount"`
	Quantity         int    `json:"quantity"`

	Status              string     `json:"status"`
	StatusUpdatedAt     *time.Time `json:"status_updated_at,omitempty"`
	LastContactedBy     string     `json:"last_contacted_by,omitempty"`
	LastContactedByName string     `json:"last_contacted_by_name,omitempty"`
	IsBonus             bool       `json:"is_bonus,omitempty"`

	CustomerName          string `json:"customer_name"`
	CustomerPhone         string `json:"customer_phone"`
	CustomerEmail         string `json:"customer_email,omitempty"`
	CustomerStreetAddress string `json:"customer_street_address,omitempty"`
	CustomerHouseNumber   string `json:"customer_house_number,omitempty"`
	CustomerCity          string `json:"customer_city,omitempty"`
	CustomerProvince      string `json:"customer_province,omitempty"`
	CustomerZip           string `json:"customer_zip,omitempty"`

	SubID          string                       `json:"sub_id,omitempty"`
	TrackingCode   string                       `json:"tracking_code,omitempty"`
	Notes          string                       `json:"notes,omitempty"`
	ContactHistory []ContactHistoryItemResponse `json:"contact_history,omitempty"`

	SaleDate time.Time `json:"sale_date"`
}

// NotificationResponse avviso in-app, con flag di lettura calcolato per
// il richiedente.
type NotificationResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Link        string    `json:"link,omitempty"`
	TargetRoles []string  `json:"target_roles"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketReplyResponse risposta nel thread di un ticket.
type TicketReplyResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketResponse ticket di assistenza con il suo thread.
type TicketResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	UserName  string                `json:"user_name"`
	Role      string                `json:"role"`
	Subject   string                `json:"subject"`
	Status    string                `json:"status"`
	Replies   []TicketReplyResponse `json:"replies"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// BundleOptionResponse offerta multi-pezzo di catalogo.
type BundleOptionResponse struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Commission  string `json:"commission"`
	PlatformFee string `json:"platform_fee"`
}

// VariantResponse variante di catalogo.
type VariantResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// ProductResponse articolo di catalogo. I campi di costo compaiono solo
// per admin e manager.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	Price      string `json:"price"`
	Commission string `json:"commission"`

	ProductCost            string `json:"product_cost,omitempty"`
	ShippingCost           string `json:"shipping_cost,omitempty"`
	FulfillmentCost        string `json:"fulfillment_cost,omitempty"`
	CustomerCareCommission string `json:"customer_care_commission,omitempty"`
	PlatformFee            string `json:"platform_fee,omitempty"`

	Stock    int  `json:"stock"`
	IsActive bool `json:"is_active"`

	Bundles  []BundleOptionResponse `json:"bundles,omitempty"`
	Variants []VariantResponse      `json:"variants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockExpenseResponse acquisto di stock registrato.
type StockExpenseResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Description  string    `json:"description,omitempty"`
	Payer        string    `json:"payer"`
	Quantity     int       `json:"quantity"`
	UnitCost     string    `json:"unit_cost"`
	TotalCost    string    `json:"total_cost"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// ReportResponse KPI di periodo; i campi valorizzati dipendono dal ruolo.
type ReportResponse struct {
	TotalSalesCount int     `json:"total_sales_count"`
	ApprovalRate    float64 `json:"approval_rate"`

	ApprovedCommissions string `json:"approved_commissions,omitempty"`
	PendingCommissions  string `json:"pending_commissions,omitempty"`

	ConfirmedCareCommissions string  `json:"confirmed_care_commissions,omitempty"`
	PendingCareCommissions   string  `json:"pending_care_commissions,omitempty"`
	OrdersHandled            int     `json:"orders_handled,omitempty"`
	ConversionRate           float64 `json:"conversion_rate,omitempty"`

	ConfirmedRevenue              string `json:"confirmed_revenue,omitempty"`
	PendingRevenue                string `json:"pending_revenue,omitempty"`
	ConfirmedCosts                string `json:"confirmed_costs,omitempty"`
	ConfirmedAffiliateCommissions string `json:"confirmed_affiliate_commissions,omitempty"`
	PendingAffiliateCommissions   string `json:"pending_affiliate_commissions,omitempty"`
	ConfirmedLogisticsCommissions string `json:"confirmed_logistics_commissions,omitempty"`
	PendingLogisticsCommissions   string `json:"pending_logistics_commissions,omitempty"`
	ConfirmedPlatformProfit       string `json:"confirmed_platform_profit,omitempty"`
	PendingPlatformProfit         string `json:"pending_platform_profit,omitempty"`
	NetProfit                     string `json:"net_profit,omitempty"`
}

// ProductStatResponse riga della classifica prodotti.
type ProductStatResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	ImageURL       string `json:"image_url,omitempty"`
	Count          int    `json:"count"`
	Quantity       int    `json:"quantity"`
	Revenue        string `json:"revenue"`
	Commission     string `json:"commission"`
	CareCommission string `json:"care_commission"`
}

// AffiliateRowResponse riga della leaderboard affiliati.
type AffiliateRowResponse struct {
	AffiliateID         string `json:"affiliate_id"`
	Name                string `json:"name"`
	TotalRevenue        string `json:"total_revenue"`
	TotalSalesCount     int    `json:"total_sales_count"`
	ApprovedCommissions string `json:"approved_commissions"`
	PendingCommissions  string `json:"pending_commissions"`
}

// DashboardResponse widget della home.
type DashboardResponse struct {
	Report             ReportResponse        `json:"report"`
	TopProducts        []ProductStatResponse `json:"top_products"`
	StatusCounts       map[string]int        `json:"status_counts"`
	Balance            string                `json:"balance,omitempty"`
	AvailableForPayout string                `json:"available_for_payout,omitempty"`
	LogisticsQueue     int                   `json:"logistics_queue"`
	CareQueue          int                   `json:"care_queue"`
	PendingPayouts     int                   `json:"pending_payouts"`
	OpenTickets        int                   `json:"open_tickets"`
}
