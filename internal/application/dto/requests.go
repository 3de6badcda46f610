// Package dto definisce i contratti JSON dell'API: richieste in
// ingresso e risposte in uscita. Gli importi viaggiano come stringhe
// decimali per non perdere precisione.
package dto

// LoginRequest credenziali di accesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest cambio password dell'utente autenticato.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateUserRequest creazione utente da parte dell'admin.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateProfileRequest aggiornamento del proprio profilo.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ChangeStatusRequest transizione di stato di una vendita.
type ChangeStatusRequest struct {
	Status       string `json:"status"`
	TrackingCode string `json:"tracking_code,omitempty"`
}

// ContactRequest registrazione di un contatto cliente.
type ContactRequest struct {
	Channel string `json:"channel"`
	Note    string `json:"note"`
}

// UpdateNotesRequest note operative della vendita.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateCustomerRequest recapiti del cliente.
type UpdateCustomerRequest struct {
	CustomerName          string `json:"customer_name"`
	CustomerPhone         string `json:"customer_phone"`
	CustomerEmail         string `json:"customer_email"`
	CustomerStreetAddress string `json:"customer_street_address"`
	CustomerHouseNumber   string `json:"customer_house_number"`
	CustomerCity          string `json:"customer_city"`
	CustomerProvince      string `json:"customer_province"`
	CustomerZip           string `json:"customer_zip"`
}

// CreateSaleRequest inserimento manuale di un ordine (admin/manager).
// Importi e commissione si calcolano dal catalogo; il bundle, se
// indicato, sostituisce prezzo e commissione del singolo pezzo.
type CreateSaleRequest struct {
	ProductID   string `json:"product_id"`
	AffiliateID string `json:"affiliate_id"`
	BundleID    string `json:"bundle_id,omitempty"`
	VariantID   string `json:"variant_id,omitempty"`

	CustomerName          string `json:"customer_name"`
	CustomerPhone         string `json:"customer_phone"`
	CustomerEmail         string `json:"customer_email,omitempty"`
	CustomerStreetAddress string `json:"customer_street_address,omitempty"`
	CustomerHouseNumber   string `json:"customer_house_number,omitempty"`
	CustomerCity          string `json:"customer_city,omitempty"`
	CustomerProvince      string `json:"customer_province,omitempty"`
	CustomerZip           string `json:"customer_zip,omitempty"`

	SubID string `json:"sub_id,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PayoutRequest richiesta di prelievo.
type PayoutRequest struct {
	Amount         string `json:"amount"`
	PaymentMethod  string `json:"payment_method"`
	PaymentDetails string `json:"payment_details"`
}

// TransferRequest trasferimento di saldo.
type TransferRequest struct {
	FromUserID string `json:"from_user_id,omitempty"` // solo admin; altrimenti il mittente è chi chiama
	ToUserID   string `json:"to_user_id"`
	Amount     string `json:"amount"`
	Notes      string `json:"notes,omitempty"`
}

// BonusRequest accredito di un bonus manuale.
type BonusRequest struct {
	RecipientID string `json:"recipient_id"`
	Amount      string `json:"amount"`
	Notes       string `json:"notes,omitempty"`
}

// AdjustmentRequest rettifica amministrativa di saldo.
type AdjustmentRequest struct {
	ToUserID string `json:"to_user_id"`
	Amount   string `json:"amount"`
	Notes    string `json:"notes,omitempty"`
}

// CreateNotificationRequest pubblicazione di un avviso.
type CreateNotificationRequest struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Link        string   `json:"link,omitempty"`
	TargetRoles []string `json:"target_roles"`
}

// OpenTicketRequest apertura di un ticket di assistenza.
type OpenTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// TicketReplyRequest risposta su un ticket.
type TicketReplyRequest struct {
	Message string `json:"message"`
}

// TicketStatusRequest avanzamento di stato di un ticket.
type TicketStatusRequest struct {
	Status string `json:"status"`
}

// BundleOptionPayload offerta multi-pezzo nel payload prodotto.
type BundleOptionPayload struct {
	ID          string `json:"id,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Commission  string `json:"commission"`
	PlatformFee string `json:"platform_fee"`
}

// VariantPayload variante nel payload prodotto.
type VariantPayload struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// ProductRequest creazione o aggiornamento di un articolo di catalogo.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	Price      string `json:"price"`
	Commission string `json:"commission"`

	ProductCost            string `json:"product_cost"`
	ShippingCost           string `json:"shipping_cost"`
	FulfillmentCost        string `json:"fulfillment_cost"`
	CustomerCareCommission string `json:"customer_care_commission"`
	PlatformFee            string `json:"platform_fee"`

	Stock    int  `json:"stock"`
	IsActive bool `json:"is_active"`

	Bundles  []BundleOptionPayload `json:"bundles,omitempty"`
	Variants []VariantPayload      `json:"variants,omitempty"`
}

// StockExpenseRequest registrazione di un acquisto di stock.
type StockExpenseRequest struct {
	ProductID    string `json:"product_id"`
	Description  string `json:"description"`
	Payer        string `json:"payer"`
	Quantity     int    `json:"quantity"`
	UnitCost     string `json:"unit_cost"`
	PurchaseDate string `json:"purchase_date"` // YYYY-MM-DD
}
