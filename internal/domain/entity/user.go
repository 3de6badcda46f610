package entity

import "time"

// Role ruolo di un utente della piattaforma. Variante etichettata: le regole
// specifiche per ruolo (stati modificabili, commissioni, KPI) vivono in tabelle
// statiche indicizzate per Role, mai in catene di if sparse.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleAffiliate    Role = "affiliate"
	RoleLogistics    Role = "logistics"
	RoleCustomerCare Role = "customer_care"
)

// Valid riporta true se il ruolo appartiene all'enumerazione.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAffiliate, RoleLogistics, RoleCustomerCare:
		return true
	}
	return false
}

// HasBalance indica se il ruolo ha un concetto di saldo calcolato dal ledger.
// Admin ha saldo illimitato (sentinella, mai un numero); Logistics non ha saldo.
func (r Role) HasBalance() bool {
	return r == RoleAffiliate || r == RoleManager || r == RoleCustomerCare
}

// User utente della piattaforma, qualunque sia il ruolo.
// I campi specifici di un ruolo restano a zero per gli altri.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsBlocked    bool
	UniqueLink   string // solo affiliati: link referral
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
